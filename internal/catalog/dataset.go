package catalog

// Default returns the built-in comparison dataset covering the major
// open QEC frameworks. The text is hand-curated; nothing here is
// computed from the profiles.
func Default() *Catalog {
	c, err := New(defaultProfiles(), defaultScenarios(), defaultLayers())
	if err != nil {
		// The built-in dataset is a compile-time literal; failing
		// validation means the literal itself is broken.
		panic("catalog: built-in dataset invalid: " + err.Error())
	}
	return c
}

func defaultProfiles() []Profile {
	return []Profile{
		{
			Name:           "Loom",
			Developer:      "Entropica Labs (Singapore)",
			Type:           "Full-stack QEC toolkit",
			PrimaryFocus:   "Visual design & lattice surgery",
			Language:       "Python",
			License:        "Open-source",
			LaunchDate:     "2024-2025",
			UniqueStrength: "Entwine visual GUI for lattice surgery",
			Integration:    "Stim, OpenQASM, PennyLane/Catalyst",
			BestFor:        "Research, visual prototyping, education",
			Installation:   "pip/poetry",
			Documentation:  "7/10 - Good API docs, needs more tutorials",
			Community:      "Growing, QEC Challenge 2025",
			BackendLayer:   "High-level design layer",
		},
		{
			Name:           "Deltakit",
			Developer:      "Riverlane (UK)",
			Type:           "SDK + Learning platform",
			PrimaryFocus:   "Learning & deployment pipeline",
			Language:       "Python",
			License:        "Open-source + proprietary cloud",
			LaunchDate:     "September 2025",
			UniqueStrength: "Comprehensive interactive textbook",
			Integration:    "Deltaflow hardware, cloud decoders",
			BestFor:        "Learning, production deployment",
			Installation:   "pip + cloud token",
			Documentation:  "9/10 - Excellent textbook",
			Community:      "Backed by established QEC leader",
			BackendLayer:   "High-level with hardware focus",
		},
		{
			Name:           "Stim",
			Developer:      "Craig Gidney (Google)",
			Type:           "Stabilizer circuit simulator",
			PrimaryFocus:   "High-performance QEC simulation",
			Language:       "C++ with Python bindings",
			License:        "Open-source (Apache 2.0)",
			LaunchDate:     "2021",
			UniqueStrength: "Extreme speed (198 papers in 2024)",
			Integration:    "Used by Loom, Deltakit, PyMatching",
			BestFor:        "Fast simulation, research backbone",
			Installation:   "pip install stim",
			Documentation:  "8/10 - Good technical docs",
			Community:      "Industry standard, widely adopted",
			BackendLayer:   "Low-level simulation engine",
		},
		{
			Name:           "PyMatching",
			Developer:      "Oscar Higgott & Craig Gidney",
			Type:           "Decoder library",
			PrimaryFocus:   "Minimum-weight perfect matching",
			Language:       "Python/C++",
			License:        "Open-source",
			LaunchDate:     "2021 (v2 in 2023)",
			UniqueStrength: "100-1000x faster than v1",
			Integration:    "Designed for Stim, used with Sinter",
			BestFor:        "Fast decoding of surface codes",
			Installation:   "pip install pymatching",
			Documentation:  "8/10 - Clear API docs",
			Community:      "Standard decoder in research",
			BackendLayer:   "Decoder layer",
		},
		{
			Name:           "qLDPC",
			Developer:      "Infleqtion & JPMorgan Chase",
			Type:           "LDPC code library",
			PrimaryFocus:   "Hardware-efficient codes",
			Language:       "Python",
			License:        "Open-source",
			LaunchDate:     "May 2025",
			UniqueStrength: "10-100x qubit reduction",
			Integration:    "Neutral atom hardware",
			BestFor:        "Hardware-aware optimization",
			Installation:   "GitHub (qLDPCOrg/qldpc)",
			Documentation:  "New, documentation growing",
			Community:      "New, backed by major players",
			BackendLayer:   "Code design layer",
		},
		{
			Name:           "MQT QECC",
			Developer:      "TU Munich",
			Type:           "QEC toolkit",
			PrimaryFocus:   "Design automation",
			Language:       "Python/C++",
			License:        "Open-source",
			LaunchDate:     "Ongoing development",
			UniqueStrength: "Full stack coverage",
			Integration:    "Part of Munich Quantum Toolkit",
			BestFor:        "Research, compilation",
			Installation:   "pip install mqt.qecc",
			Documentation:  "Good, academic focus",
			Community:      "Academic community",
			BackendLayer:   "Multi-layer toolkit",
		},
		{
			Name:           "Qiskit",
			Developer:      "IBM",
			Type:           "General quantum framework",
			PrimaryFocus:   "Full quantum computing stack",
			Language:       "Python",
			License:        "Open-source (Apache 2.0)",
			LaunchDate:     "2017",
			UniqueStrength: "Industry standard, IBM hardware",
			Integration:    "IBM Quantum, Aer simulator",
			BestFor:        "IBM ecosystem, general QC",
			Installation:   "pip install qiskit",
			Documentation:  "10/10 - Comprehensive",
			Community:      "Largest quantum community",
			BackendLayer:   "Full stack platform",
		},
	}
}

// CompareFields is the category order used by the headline
// per-category comparison.
func CompareFields() []Field {
	return []Field{
		FieldType,
		FieldPrimaryFocus,
		FieldUniqueStrength,
		FieldBestFor,
		FieldBackendLayer,
	}
}

func defaultScenarios() []Scenario {
	return []Scenario{
		{
			Description: "I want to learn QEC from scratch",
			Best:        "Deltakit",
			BestNotes: []string{
				"Structured textbook from basics to advanced",
				"Interactive exercises",
				"Clear learning path",
			},
			AltLabel:    "ALSO CONSIDER",
			Alternative: "Qiskit tutorials",
			AltNotes: []string{
				"Extensive documentation",
				"Large community support",
			},
		},
		{
			Description: "I need to design and visualize lattice surgery",
			Best:        "Loom (Entwine)",
			BestNotes: []string{
				"Only platform with visual GUI",
				"Drag-and-drop interface",
				"Exports to code",
			},
			AltLabel: "NO ALTERNATIVE",
			AltNotes: []string{"This is Loom's unique feature"},
		},
		{
			Description: "I need maximum simulation performance",
			Best:        "Stim directly",
			BestNotes: []string{
				"Fastest available (industry standard)",
				"Can simulate huge circuits",
				"Used in 198 papers (2024)",
			},
			AltLabel:    "HIGH-LEVEL WRAPPER",
			Alternative: "Loom or Deltakit",
			AltNotes: []string{
				"They use Stim backend anyway",
				"Add convenience features",
			},
		},
		{
			Description: "I need to decode surface codes fast",
			Best:        "PyMatching",
			BestNotes: []string{
				"Industry standard decoder",
				"100-1000x faster than alternatives",
				"Works seamlessly with Stim",
			},
			AltLabel:    "CLOUD ALTERNATIVE",
			Alternative: "Deltakit",
			AltNotes: []string{
				"Access to proprietary decoders",
				"May be faster for some cases",
			},
		},
		{
			Description: "I want hardware-efficient codes",
			Best:        "qLDPC",
			BestNotes: []string{
				"10-100x qubit reduction",
				"Optimized for neutral atoms",
				"Cutting-edge research",
			},
		},
		{
			Description: "I'm preparing for production deployment",
			Best:        "Deltakit",
			BestNotes: []string{
				"Designed for Deltaflow hardware",
				"Production-ready workflows",
				"Cloud decoder integration",
			},
			AltLabel:    "ALSO CONSIDER",
			Alternative: "Qiskit",
			AltNotes: []string{
				"If using IBM hardware",
				"Enterprise support available",
			},
		},
		{
			Description: "I'm doing academic QEC research",
			BestLabel:   "STACK APPROACH",
			Best:        "Use multiple tools",
			BestNotes: []string{
				"Stim + PyMatching: Core simulation/decoding",
				"Loom: Visual design when needed",
				"qLDPC: Explore new code families",
				"MQT: Compilation research",
			},
		},
		{
			Description: "I'm building custom QEC solutions",
			BestLabel:   "TOOLKIT APPROACH",
			Best:        "Stim + PyMatching + custom high-level logic",
			BestNotes: []string{
				"Stim: Simulation engine",
				"PyMatching: Decoder",
				"Or fork/extend existing platforms",
			},
		},
	}
}

func defaultLayers() []Layer {
	return []Layer{
		{
			Title: "HIGH-LEVEL DESIGN & LEARNING",
			Entries: []string{
				"Loom (visual design, lattice surgery)",
				"Deltakit (learning, textbook)",
				"Qiskit (full platform)",
			},
		},
		{
			Title: "CODE DESIGN & OPTIMIZATION",
			Entries: []string{
				"qLDPC (hardware-efficient LDPC codes)",
				"MQT QECC (synthesis & compilation)",
			},
		},
		{
			Title: "SIMULATION ENGINE",
			Entries: []string{
				"Stim (high-performance stabilizer simulation)",
				"Qiskit Aer (general quantum simulation with noise)",
			},
		},
		{
			Title: "DECODING",
			Entries: []string{
				"PyMatching (MWPM decoder)",
				"Deltakit cloud decoders (proprietary)",
				"Various other decoder implementations",
			},
		},
	}
}

package report

// Section is a hand-curated prose block reproduced verbatim in the
// full report. These are opaque static payloads; nothing in them is
// computed or executed.
type Section struct {
	Title string
	Body  string
}

// StaticSections returns the curated analysis blocks in report order.
func StaticSections() []Section {
	return []Section{
		{Title: "KEY DISTINCTIONS", Body: keyDistinctions},
		{Title: "COMPARISON TIERS", Body: comparisonTiers},
		{Title: "THE VERDICT: WHAT SHOULD YOU COMPARE?", Body: verdict},
	}
}

const keyDistinctions = `DIFFERENT SCOPE LEVELS:

1. FULL PLATFORMS (End-to-end solutions):
   • Loom: Design → Simulation (via Stim backend)
   • Deltakit: Learning → Hardware deployment
   • Qiskit: General quantum computing with QEC features

2. SPECIALIZED LIBRARIES (Specific tasks):
   • Stim: THE simulation engine (used by many others)
   • PyMatching: THE decoder library (used by many others)
   • qLDPC: Code design for hardware efficiency
   • MQT: Compilation and synthesis tools

3. NOT DIRECTLY COMPARABLE:
   Comparing Loom vs Stim is like comparing:
   • A car (full vehicle) vs an engine (component)
   • Loom USES Stim as its backend
   • Deltakit can also use Stim for simulation`

const comparisonTiers = `TIER 1: High-Level Platforms (Direct Competitors)
Compare THESE directly:

• Loom vs Deltakit vs Qiskit QEC features
  - All provide end-to-end QEC workflows
  - Different approaches: visual vs textbook vs enterprise
  - Choice depends on: research vs learning vs production

TIER 2: Core Infrastructure (Complementary, Not Competing)
These are USED BY Tier 1 platforms:

• Stim: Simulation backbone (nearly universal)
• PyMatching: Decoder standard (widely used)
• qLDPC: Specialized code library
• MQT: Compilation toolkit

→ You typically use Tier 1 platforms which internally use Tier 2 libraries
→ Or use Tier 2 directly if building custom solutions`

const verdict = `COMPARING HIGH-LEVEL PLATFORMS (Apples to Apples):

Loom vs Deltakit:
✓ FAIR COMPARISON - Both are end-to-end platforms
✓ Different strengths: visual design vs learning
✓ Choice depends on use case

Loom/Deltakit vs Qiskit:
✓ FAIR but different scales
✓ Qiskit is broader platform (general QC + QEC)
✓ Loom/Deltakit are QEC-specialized

COMPARING INFRASTRUCTURE (Context Required):

Stim vs Loom:
✗ UNFAIR - Different layers
✓ Better: "Loom uses Stim backend"
✓ Note: You can use Stim directly OR through Loom

PyMatching vs Deltakit decoders:
~ PARTIALLY FAIR - Both do decoding
✓ PyMatching: Open-source, standard
✓ Deltakit: Proprietary cloud, possibly faster`

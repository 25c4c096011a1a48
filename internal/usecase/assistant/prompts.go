package assistant

import (
	"fmt"
	"strings"

	"github.com/ashk12/phone-assistant/internal/domain"
)

func recommendPrompt(query, summary string) string {
	return fmt.Sprintf(`User wants phone recommendations: %q

%s
Provide a helpful, structured recommendation:

**Best Options for You:**
[Brief summary of why these match their needs]

**Top Recommendations:**
[Ranked list with 2-4 best options]

For each phone:
- **Key Strengths:** [What makes it good for their specific needs]
- **Spec Highlights:** [Most relevant specs for their query]
- **Considerations:** [Any trade-offs or things to note]

**Final Advice:** [1-2 sentence summary recommendation]

Be specific and focus on how each phone addresses their stated needs.`, query, summary)
}

func comparePrompt(query string, a, b domain.Product) string {
	return fmt.Sprintf(`User wants to compare phones: %q

Phones to compare:
%s
%s
Provide a detailed comparison:

**Comparison: %s vs %s**

**Specifications Comparison:**
[Markdown table of price, camera, battery, charging, RAM, screen size, OS]

**Key Differences:**
[Highlight 3-4 most significant differences]

**Recommendation:**
- Choose %s if: [2-3 specific reasons]
- Choose %s if: [2-3 specific reasons]

**Verdict:** [Which is better for different use cases]`,
		query, specLines(a), specLines(b), a.Name, b.Name, a.Name, b.Name)
}

func explainPrompt(query, concept string) string {
	return fmt.Sprintf(`User wants explanation: %q

Explain this mobile phone concept in simple, clear terms:
Concept: %s

Provide a comprehensive explanation:

**What is %s?**
[Simple definition]

**How it works:**
[Brief technical explanation in layman's terms]

**Why it matters in phones:**
[Practical benefits and impact on user experience]

**Real-world Example:**
[How this affects phone usage or buying decisions]

Keep it educational but easy to understand for non-technical users.`,
		query, concept, concept)
}

func detailPrompt(query string, p domain.Product) string {
	return fmt.Sprintf(`User wants detailed information about: %q

Phone details:
%s
Provide a comprehensive overview:

**%s - Complete Overview**

**Key Specifications:**
[Price, camera, battery and charging, RAM and OS, display]

**Detailed Analysis:**
[Insights about camera quality, performance, battery life, display]

**Best For:**
[What type of users would benefit most from this phone]

**Verdict:** [Overall assessment of the phone's value and positioning]

Make it informative and helpful for someone considering this phone.`,
		query, specLines(p), p.Name)
}

// specLines renders one product's attributes for a prompt context.
func specLines(p domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", p.Brand, p.Name)
	fmt.Fprintf(&b, "- Price: %.0f\n", p.Price)
	fmt.Fprintf(&b, "- Camera: %.0fMP\n", p.Camera)
	fmt.Fprintf(&b, "- Battery: %.0fmAh with %.0fW charging\n", p.Battery, p.Charging)
	fmt.Fprintf(&b, "- RAM: %.0fGB\n", p.RAM)
	fmt.Fprintf(&b, "- Screen: %g inches\n", p.ScreenSize)
	fmt.Fprintf(&b, "- OS: %s\n", p.OS)
	fmt.Fprintf(&b, "- Features: %s\n", strings.Join(p.Features, ", "))
	return b.String()
}

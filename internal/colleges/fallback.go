package colleges

import (
	"encoding/json"
	"strings"

	"github.com/careercompass/backend/internal/models"
)

const fallbackNote = "AI recommendations are currently unavailable. Showing a curated list of top institutions instead."

var fallbackColleges = []models.College{
	{
		Name:         "Indian Institute of Technology Bombay",
		Location:     "Mumbai, Maharashtra",
		Type:         "Public",
		Ranking:      "NIRF #3 (Engineering)",
		Programs:     []string{"B.Tech Computer Science", "B.Tech Electrical Engineering", "M.Tech", "PhD"},
		Description:  "One of India's premier engineering institutes, known for strong research and a vibrant startup culture.",
		Website:      "https://www.iitb.ac.in",
		Rating:       4.8,
		StudentCount: "10,000+",
		Established:  "1958",
		Fees:         "₹2.2 Lakhs per year",
	},
	{
		Name:         "Indian Institute of Technology Delhi",
		Location:     "New Delhi, Delhi",
		Type:         "Public",
		Ranking:      "NIRF #2 (Engineering)",
		Programs:     []string{"B.Tech Computer Science", "B.Tech Mathematics and Computing", "M.Tech", "MBA"},
		Description:  "A leading technical university with top placements and close industry ties.",
		Website:      "https://home.iitd.ac.in",
		Rating:       4.8,
		StudentCount: "11,000+",
		Established:  "1961",
		Fees:         "₹2.2 Lakhs per year",
	},
	{
		Name:         "Indian Institute of Management Ahmedabad",
		Location:     "Ahmedabad, Gujarat",
		Type:         "Public",
		Ranking:      "NIRF #1 (Management)",
		Programs:     []string{"MBA (PGP)", "PGPX", "PhD in Management"},
		Description:  "India's top business school, renowned for its case-based teaching and leadership alumni.",
		Website:      "https://www.iima.ac.in",
		Rating:       4.9,
		StudentCount: "1,200+",
		Established:  "1961",
		Fees:         "₹12.5 Lakhs per year",
	},
	{
		Name:         "All India Institute of Medical Sciences",
		Location:     "New Delhi, Delhi",
		Type:         "Public",
		Ranking:      "NIRF #1 (Medical)",
		Programs:     []string{"MBBS", "MD", "MS", "B.Sc Nursing"},
		Description:  "The country's foremost medical college and hospital, with highly competitive admissions.",
		Website:      "https://www.aiims.edu",
		Rating:       4.9,
		StudentCount: "3,000+",
		Established:  "1956",
		Fees:         "₹1,628 per year",
	},
	{
		Name:         "Birla Institute of Technology and Science, Pilani",
		Location:     "Pilani, Rajasthan",
		Type:         "Private (Deemed University)",
		Ranking:      "NIRF #20 (Engineering)",
		Programs:     []string{"B.E. Computer Science", "B.E. Electronics", "M.E.", "MBA"},
		Description:  "A top private engineering institute known for its flexible curriculum and practice school program.",
		Website:      "https://www.bits-pilani.ac.in",
		Rating:       4.6,
		StudentCount: "15,000+",
		Established:  "1964",
		Fees:         "₹5.5 Lakhs per year",
	},
	{
		Name:         "University of Delhi",
		Location:     "New Delhi, Delhi",
		Type:         "Public",
		Ranking:      "NIRF #6 (University)",
		Programs:     []string{"B.A.", "B.Com", "B.Sc", "M.A.", "LLB"},
		Description:  "A large central university offering a broad range of arts, commerce and science programs.",
		Website:      "https://www.du.ac.in",
		Rating:       4.4,
		StudentCount: "130,000+",
		Established:  "1922",
		Fees:         "₹15,000 to ₹50,000 per year",
	},
}

var (
	engineeringKeywords = []string{"computer", "engineering", "technology", "software"}
	businessKeywords    = []string{"business", "management", "mba"}
	medicalKeywords     = []string{"medical", "medicine", "mbbs"}
)

// fallbackFor returns the static entries that match field.
func fallbackFor(field string) []models.College {
	f := strings.ToLower(field)
	switch {
	case containsAny(f, engineeringKeywords):
		return pick(0, 1, 4)
	case containsAny(f, businessKeywords):
		return pick(2)
	case containsAny(f, medicalKeywords):
		return pick(3)
	default:
		return pick(0, 1, 2, 3)
	}
}

func pick(idx ...int) []models.College {
	out := make([]models.College, 0, len(idx))
	for _, i := range idx {
		out = append(out, fallbackColleges[i])
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func toRaw(colleges []models.College) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(colleges))
	for _, c := range colleges {
		b, err := json.Marshal(c)
		if err != nil {
			// College holds only strings and numbers
			panic(err)
		}
		out = append(out, b)
	}
	return out
}

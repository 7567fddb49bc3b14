package catalog

import (
	"context"

	"trabaho-board/internal/domain"
)

// LiteralSource serves a compiled-in job list.
type LiteralSource struct {
	Jobs []domain.Job
}

// NewLiteral returns the built-in sample postings.
func NewLiteral() LiteralSource {
	return LiteralSource{Jobs: SampleJobs()}
}

func (s LiteralSource) Name() string { return "literal" }

func (s LiteralSource) Load(ctx context.Context) ([]domain.Job, error) {
	out := make([]domain.Job, len(s.Jobs))
	copy(out, s.Jobs)
	return out, ctx.Err()
}

// SampleJobs is the launch catalogue of Trabaho PH.
func SampleJobs() []domain.Job {
	return []domain.Job{
		{
			Title:       "Junior Web Developer",
			Company:     "Mabuhay Tech Solutions",
			Location:    "Metro Manila",
			Type:        "Full-time",
			Salary:      "PHP 25,000 - 35,000 / month",
			Posted:      "3 days ago",
			Remote:      false,
			Skills:      []string{"HTML", "CSS", "JavaScript", "Git"},
			Description: "Tulong sa paggawa at pag-maintain ng company websites. Open sa fresh graduates na may basic web dev skills.",
			ApplyLink:   "mailto:hr@mabuhaytech.ph?subject=Application%20-%20Junior%20Web%20Developer",
		},
		{
			Title:       "Online ESL Teacher",
			Company:     "Bayan Learning Center",
			Location:    "Remote",
			Type:        "Part-time",
			Salary:      "PHP 180 - 230 / hour",
			Posted:      "1 week ago",
			Remote:      true,
			Skills:      []string{"English Communication", "Teaching", "Zoom"},
			Description: "Mag-turo ng English sa mga bata at adults online. May training at provided na lesson materials.",
			ApplyLink:   "mailto:jobs@bayanlearning.ph?subject=Application%20-%20Online%20ESL%20Teacher",
		},
		{
			Title:       "Registered Nurse",
			Company:     "Pag-asa Medical Center",
			Location:    "Cebu",
			Type:        "Full-time",
			Salary:      "PHP 30,000 - 45,000 / month",
			Posted:      "2 days ago",
			Remote:      false,
			Skills:      []string{"Nursing", "Patient Care", "BLS/ACLS"},
			Description: "Magbibigay ng nursing care sa mga pasyente sa medical-surgical ward. Open sa may valid PRC license.",
			ApplyLink:   "mailto:careers@pagasamedical.ph?subject=Application%20-%20Registered%20Nurse",
		},
		{
			Title:       "Customer Support Representative",
			Company:     "IslaConnect BPO",
			Location:    "Davao",
			Type:        "Contract",
			Salary:      "PHP 28,000 - 32,000 / month",
			Posted:      "5 days ago",
			Remote:      false,
			Skills:      []string{"Communication", "Customer Service", "Call Center"},
			Description: "Sasagot sa tawag at chat ng customers. Night shift; may night differential at allowances.",
			ApplyLink:   "mailto:apply@islaconnect.ph?subject=Application%20-%20Customer%20Support%20Representative",
		},
		{
			Title:       "Graphic Design Intern",
			Company:     "Likhain Studio",
			Location:    "Metro Manila",
			Type:        "Internship",
			Salary:      "Allowance + portfolio experience",
			Posted:      "Today",
			Remote:      true,
			Skills:      []string{"Canva", "Photoshop", "Creativity"},
			Description: "Tutulong sa paggawa ng social media posts at marketing materials. Open sa students.",
			ApplyLink:   "mailto:hello@likhainstudio.ph?subject=Application%20-%20Graphic%20Design%20Intern",
		},
	}
}

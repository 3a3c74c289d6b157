package source

import (
	"context"

	"scholarship-tracker-go/internal/model"
)

// CatalogSource serves the curated list of currently-open scholarships. It is
// the baseline source and never fails.
type CatalogSource struct{}

func NewCatalog() *CatalogSource {
	return &CatalogSource{}
}

func (c *CatalogSource) Name() string {
	return "catalog"
}

func (c *CatalogSource) Fetch(ctx context.Context) ([]model.Scholarship, error) {
	out := make([]model.Scholarship, len(catalog))
	copy(out, catalog)
	return out, nil
}

var catalog = []model.Scholarship{
	{
		Title: "Prime Minister's Research Fellowship (PMRF)",
		Description: "Direct admission to PhD programs at IITs/IISc for students who have completed/are pursuing final year B.Tech/Integrated M.Tech/M.Sc. " +
			"Benefits: Fellowship of Rs.70,000-80,000 per month plus research grant of Rs.2 lakhs per year.",
		Source:   "Government of India",
		URL:      "https://pmrf.in/",
		Amount:   "Rs. 70,000-80,000 per month + Research grant",
		Deadline: "February 28, 2025",
	},
	{
		Title: "AICTE PG (GATE/GPAT) Scholarship",
		Description: "For GATE/GPAT qualified students pursuing M.E./M.Tech/M.Arch and M.Pharma courses. " +
			"Monthly stipend for 24 months or duration of course, whichever is less.",
		Source:   "AICTE",
		URL:      "https://www.aicte-india.org/schemes/students-development-schemes/PG-Scholarship-Scheme",
		Amount:   "Rs. 12,400 per month",
		Deadline: "Ongoing",
	},
	{
		Title: "National Overseas Scholarship",
		Description: "For SC, ST, landless agricultural laborers and traditional artisans' children for pursuing Master's level courses and PhD abroad. " +
			"Covers tuition fees, living expenses, travel, and more.",
		Source:   "Ministry of Social Justice and Empowerment",
		URL:      "https://nosmsje.gov.in/",
		Amount:   "Full funding including tuition fees and living expenses",
		Deadline: "March 31, 2025",
	},
	{
		Title: "Post Graduate Indira Gandhi Scholarship for Single Girl Child",
		Description: "For single girl child to pursue non-professional PG courses. " +
			"Girl students up to the age of 30 years (as on 1st July of the year) can apply.",
		Source:   "UGC",
		URL:      "https://www.ugc.ac.in/",
		Amount:   "Rs. 36,200 per annum",
		Deadline: "March 15, 2025",
	},
	{
		Title: "Post Graduate Merit Scholarship for University Rank Holders",
		Description: "For students who have secured first and second rank in undergraduate degree for pursuing post graduation. " +
			"Valid for all streams except technical/professional courses.",
		Source:   "UGC",
		URL:      "https://scholarships.gov.in",
		Amount:   "Rs. 3,100 per month for 2 years",
		Deadline: "February 28, 2025",
	},
	{
		Title: "Kishore Vaigyanik Protsahan Yojana (KVPY)",
		Description: "Fellowship program to encourage students to pursue research careers in Science. " +
			"For students from Class 11 to 1st year of any UG Program.",
		Source:   "Department of Science and Technology",
		URL:      "http://www.kvpy.iisc.ernet.in/",
		Amount:   "Rs. 5,000-7,000 per month + Summer Fellowship",
		Deadline: "Ongoing",
	},
	{
		Title: "CSIR Junior Research Fellowship",
		Description: "For pursuing PhD in Science, Engineering, Medicine, Agriculture, Pharmacy, and other related fields. " +
			"Candidates must qualify CSIR-UGC NET for JRF.",
		Source:   "CSIR",
		URL:      "https://csirhrdg.res.in/",
		Amount:   "Rs. 31,000 per month + HRA",
		Deadline: "June 2025 (Next cycle)",
	},
}

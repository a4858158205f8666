package normalizer

// keyword lists used to classify resume lines into sections.
// kept as data rather than literals in the matching code so tests
// and deployments can swap in alternative vocabularies.
type Vocabulary struct {
	Education    []string
	Skills       []string
	Experience   []string
	Achievements []string
}

// returns the stock vocabulary used in production
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Education: []string{
			"education", "university", "college", "degree", "bachelor",
			"master", "phd", "diploma", "school", "gpa",
		},
		Skills: []string{
			"skills", "technologies", "languages", "frameworks", "tools",
			"proficient", "expertise", "competencies",
		},
		Experience: []string{
			"experience", "work", "employment", "intern", "engineer",
			"developer", "manager", "analyst", "consultant", "lead",
		},
		Achievements: []string{
			"project", "achievement", "award", "certification", "publication",
			"patent", "hackathon", "volunteer",
		},
	}
}

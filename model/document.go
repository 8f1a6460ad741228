package model

// ResumeDocument is the structured result of parsing one résumé page
type ResumeDocument struct {
	WorkExperience []WorkExperienceEntry `json:"workExperience"`
	Projects       []ProjectEntry        `json:"projects"`
}

// WorkExperienceEntry is one job
type WorkExperienceEntry struct {
	JobTitle string   `json:"jobTitle"`
	Date     string   `json:"date"`
	Company  string   `json:"company"`
	Bullets  []string `json:"bullets"`
}

// ProjectEntry is one project
type ProjectEntry struct {
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Bullets []string `json:"bullets"`
}

// NewResumeDocument creates a document with empty, non-nil entry lists
func NewResumeDocument() *ResumeDocument {
	return &ResumeDocument{
		WorkExperience: make([]WorkExperienceEntry, 0),
		Projects:       make([]ProjectEntry, 0),
	}
}

// IsEmpty returns true if the document holds no entries
func (d *ResumeDocument) IsEmpty() bool {
	return len(d.WorkExperience) == 0 && len(d.Projects) == 0
}

// EntryCount returns the total number of work and project entries
func (d *ResumeDocument) EntryCount() int {
	return len(d.WorkExperience) + len(d.Projects)
}

// Normalize replaces nil slices with empty ones so JSON output always
// carries arrays
func (d *ResumeDocument) Normalize() {
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkExperienceEntry{}
	}
	if d.Projects == nil {
		d.Projects = []ProjectEntry{}
	}
	for i := range d.WorkExperience {
		if d.WorkExperience[i].Bullets == nil {
			d.WorkExperience[i].Bullets = []string{}
		}
	}
	for i := range d.Projects {
		if d.Projects[i].Bullets == nil {
			d.Projects[i].Bullets = []string{}
		}
	}
}

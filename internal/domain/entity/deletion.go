package entity

// DeletionRoot names the kind of aggregate a cascading delete starts from.
type DeletionRoot string

const (
	DeletionRootCourse     DeletionRoot = "course"
	DeletionRootAssessment DeletionRoot = "assessment"
)

// DeletionReport counts the rows removed by one cascading delete.
type DeletionReport struct {
	Root        DeletionRoot
	Courses     int64
	Assessments int64
	Results     int64
	// MediaURL is the blob left to clean up once the transaction commits.
	MediaURL string
}

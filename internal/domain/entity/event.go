package entity

// Event types published after successful writes.
const (
	EventUserRegistered    = "UserRegistered"
	EventCourseCreated     = "CourseCreated"
	EventCourseDeleted     = "CourseDeleted"
	EventAssessmentCreated = "AssessmentCreated"
	EventResultSubmitted   = "ResultSubmitted"
)

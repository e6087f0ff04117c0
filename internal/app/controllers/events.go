package controllers

// Live feed event types
const (
	EventInquiryCreated = "inquiry.created"
	EventCourseEnrolled = "course.enrolled"
)

// EventPublisher pushes events to connected staff clients
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

// publish is a no-op when no publisher is configured
func publish(p EventPublisher, eventType string, data interface{}) {
	if p == nil {
		return
	}
	p.Publish(eventType, data)
}

package observer

type Event int

const (
	// EventInvocation fires once per remote model invocation, whatever
	// the outcome. Data is the invocation's image.Response.
	EventInvocation Event = iota + 1
	// EventTaskFinished fires when a task reaches a terminal status.
	EventTaskFinished
)

type Observer interface {
	Update(event Event, data interface{})
}

type Subject interface {
	Notify(event Event, data interface{})
}

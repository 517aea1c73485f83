package models

// All returns one empty instance of every model, in schema order.
func All() []Model {
	return []Model{
		NewEventCurve(),
		NewEventChart(),
		NewEventImage(),
		NewEventVideo(),
		NewEventAudio(),
		NewEventHistogram(),
		NewEventDataframe(),
		NewEventConfusionMatrix(),
		NewEventArtifact(),
		NewEventModel(),
		NewEvent(),
		NewLoggedEventList(),
		NewEventsResponse(),
		NewIntervalSchedule(),
		NewOptimizationMetric(),
		NewOptimizationResource(),
		NewHyperband(),
		NewQueue(),
		NewListQueuesResponse(),
		NewConnectionResponse(),
		NewListConnectionsResponse(),
		NewRuntimeError(),
	}
}

package adapter

// ChangeKind identifies which entity kind a store mutation touched.
// Change events carry no payload beyond the kind: observers re-query
// instead of expecting a diff.
type ChangeKind string

const (
	ChangeKindCategory ChangeKind = "category"
	ChangeKindTracker  ChangeKind = "tracker"
	ChangeKindRecord   ChangeKind = "record"
)

// ChangePublisher is implemented by the change-notification bus.
// Repositories publish one event per affected entity kind after a
// mutation commits; Publish must not block on observer execution.
type ChangePublisher interface {
	Publish(kind ChangeKind)
}

package htc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorID(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		rawID string
		want  string
	}{
		{"plain node id", KindNode, "17", "htcaid:node;17"},
		{"plain link id", KindLink, "a-b", "htcaid:link;a-b"},
		{"car id from trip name", KindCar, "trip_1", "htcaid:car;trip_1"},
		{"semicolon replaced", KindNode, "a;b", "htcaid:node;a_b"},
		{"colon replaced", KindLink, "a:b", "htcaid:link;a_b"},
		{"mixed separators replaced", KindCar, "x:y;z", "htcaid:car;x_y_z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActorID(tt.kind, tt.rawID))
		})
	}
}

func TestResourceID(t *testing.T) {
	assert.Equal(t, "htcrid:node;1", ResourceID(KindNode, 1))
	assert.Equal(t, "htcrid:link;42", ResourceID(KindLink, 42))
	assert.Equal(t, "htcrid:car;1000", ResourceID(KindCar, 1000))
}

func TestKindClassTypes(t *testing.T) {
	assert.Equal(t, "mobility.actor.Node", KindNode.ClassType())
	assert.Equal(t, "mobility.actor.Link", KindLink.ClassType())
	assert.Equal(t, "mobility.actor.Car", KindCar.ClassType())
}

func TestKindStateTypes(t *testing.T) {
	assert.Equal(t, "mobility.entity.state.NodeState", KindNode.StateType())
	assert.Equal(t, "model.mobility.entity.state.LinkState", KindLink.StateType())
	assert.Equal(t, "model.mobility.entity.state.CarState", KindCar.StateType())
}

func TestKindFileBase(t *testing.T) {
	assert.Equal(t, "nodes", KindNode.FileBase())
	assert.Equal(t, "links", KindLink.FileBase())
	assert.Equal(t, "cars", KindCar.FileBase())
}

func TestGPSDependency(t *testing.T) {
	dep := GPSDependency()
	assert.Equal(t, GPSActorID, dep.ID)
	assert.Equal(t, GPSResourceID, dep.ResourceID)
	assert.Equal(t, GPSClassType, dep.ClassType)
	assert.Equal(t, ActorTypePool, dep.ActorType)
}

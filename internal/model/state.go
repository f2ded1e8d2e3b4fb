package model

import (
	"strings"
)

// Attribute keys read from an observed state.
const (
	AttrFriendlyName      = "friendly_name"
	AttrUnitOfMeasurement = "unit_of_measurement"
	AttrIcon              = "icon"
	AttrDeviceClass       = "device_class"
)

const (
	// StateOn is the state value of an active toggleable entity.
	StateOn = "on"
	// StateOff is the state value of an inactive toggleable entity.
	StateOff = "off"
)

// ObservedState is a read-only snapshot of one entity pushed by the host.
type ObservedState struct {
	EntityID   string         `json:"entity_id"`
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Domain returns the entity id prefix before the first dot.
func (s *ObservedState) Domain() string {
	if s == nil {
		return ""
	}
	return Domain(s.EntityID)
}

// FriendlyName returns the friendly_name attribute or "".
func (s *ObservedState) FriendlyName() string { return s.stringAttr(AttrFriendlyName) }

// Unit returns the unit_of_measurement attribute or "".
func (s *ObservedState) Unit() string { return s.stringAttr(AttrUnitOfMeasurement) }

// Icon returns the icon attribute or "".
func (s *ObservedState) Icon() string { return s.stringAttr(AttrIcon) }

// DeviceClass returns the device_class attribute or "".
func (s *ObservedState) DeviceClass() string { return s.stringAttr(AttrDeviceClass) }

func (s *ObservedState) stringAttr(key string) string {
	if s == nil || s.Attributes == nil {
		return ""
	}
	v, _ := s.Attributes[key].(string)
	return v
}

// Clone returns a copy whose attribute map can be changed independently.
func (s ObservedState) Clone() ObservedState {
	out := s
	if s.Attributes != nil {
		out.Attributes = make(map[string]any, len(s.Attributes))
		for k, v := range s.Attributes {
			out.Attributes[k] = v
		}
	}
	return out
}

// Domain extracts the domain part of an entity id such as "sensor.kitchen".
func Domain(entityID string) string {
	domain, _, _ := strings.Cut(entityID, ".")
	return domain
}

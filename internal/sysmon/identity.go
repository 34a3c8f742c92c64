package sysmon

import "encoding/json"

// Placeholder is rendered in place of an identity value the host could not provide.
const Placeholder = "unknown"

// Value is an optional identity string. The zero Value is unknown.
type Value struct {
	s  string
	ok bool
}

// Known returns a Value holding s.
func Known(s string) Value { return Value{s: s, ok: true} }

// Unknown returns the absent Value.
func Unknown() Value { return Value{} }

// Get returns the held string and whether it is present.
func (v Value) Get() (string, bool) { return v.s, v.ok }

// IsKnown reports whether the value is present.
func (v Value) IsKnown() bool { return v.ok }

// String returns the held string or Placeholder.
func (v Value) String() string {
	if !v.ok {
		return Placeholder
	}
	return v.s
}

// MarshalJSON encodes an unknown Value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.s)
}

// Identity describes the host. Any field may be unknown.
type Identity struct {
	Name          Value `json:"system_name"`
	KernelVersion Value `json:"kernel_version"`
	HostName      Value `json:"host_name"`
	OSVersion     Value `json:"os_version"`
}

// IdentityField is one labelled identity line.
type IdentityField struct {
	Metric string
	Label  string
	Value  Value
}

// Fields returns the identity lines in display order.
func (id Identity) Fields() []IdentityField {
	return []IdentityField{
		{Metric: MetricSystemName, Label: "System name", Value: id.Name},
		{Metric: MetricKernelVersion, Label: "System kernel version", Value: id.KernelVersion},
		{Metric: MetricHostName, Label: "System host name", Value: id.HostName},
		{Metric: MetricOSVersion, Label: "System OS version", Value: id.OSVersion},
	}
}

package shipping

import (
	"strconv"
	"strings"
	"time"

	"storefront-be/internal/utils"
)

// Status is the normalized parcel state; carriers report their own vocabulary.
type Status string

const (
	StatusPickup         Status = "PICKUP"
	StatusInTransit      Status = "IN_TRANSIT"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
	StatusReturn         Status = "RETURN"
	StatusException      Status = "EXCEPTION"
)

type statusMeta struct {
	label string
	color string
	icon  string
}

var statuses = map[Status]statusMeta{
	StatusPickup:         {"상품인수", "text-blue-600", "📦"},
	StatusInTransit:      {"배송중", "text-yellow-600", "🚚"},
	StatusOutForDelivery: {"배송출발", "text-orange-600", "🚛"},
	StatusDelivered:      {"배송완료", "text-green-600", "✅"},
	StatusReturn:         {"반송", "text-red-600", "↩️"},
	StatusException:      {"배송예외", "text-red-600", "⚠️"},
}

func (s Status) Label() string {
	if m, ok := statuses[s]; ok {
		return m.label
	}
	return string(s)
}

func (s Status) Color() string {
	if m, ok := statuses[s]; ok {
		return m.color
	}
	return "text-gray-600"
}

func (s Status) Icon() string {
	if m, ok := statuses[s]; ok {
		return m.icon
	}
	return "📋"
}

// carrierVocabulary covers CJ Logistics scan names alongside our own labels.
var carrierVocabulary = map[string]Status{
	"상품인수": StatusPickup,
	"집화처리": StatusPickup,
	"배송중":  StatusInTransit,
	"간선상차": StatusInTransit,
	"간선하차": StatusInTransit,
	"배송출발": StatusOutForDelivery,
	"배달출발": StatusOutForDelivery,
	"배송완료": StatusDelivered,
	"배달완료": StatusDelivered,
	"반송":   StatusReturn,
	"반품":   StatusReturn,
	"배송예외": StatusException,
}

// ParseCarrierStatus maps a carrier status string to a Status.
// Anything unrecognized is treated as an exception.
func ParseCarrierStatus(raw string) Status {
	raw = strings.TrimSpace(raw)
	code := Status(strings.ToUpper(strings.ReplaceAll(raw, " ", "_")))
	if _, ok := statuses[code]; ok {
		return code
	}
	if s, ok := carrierVocabulary[utils.StripSpaces(raw)]; ok {
		return s
	}
	return StatusException
}

type Checkpoint struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Status      Status `json:"status"`
	StatusLabel string `json:"statusLabel"`
	Description string `json:"description"`
}

type Info struct {
	TrackingNumber    string       `json:"trackingNumber"`
	Status            Status       `json:"status"`
	StatusLabel       string       `json:"statusLabel"`
	Color             string       `json:"color"`
	Icon              string       `json:"icon"`
	EstimatedDelivery string       `json:"estimatedDelivery"`
	CurrentLocation   string       `json:"currentLocation"`
	History           []Checkpoint `json:"history"`
}

// NewInfo fills the display fields derived from status.
func NewInfo(trackingNumber string, status Status, eta, location string, history []Checkpoint) *Info {
	for i := range history {
		history[i].StatusLabel = history[i].Status.Label()
	}
	if history == nil {
		history = []Checkpoint{}
	}
	return &Info{
		TrackingNumber:    trackingNumber,
		Status:            status,
		StatusLabel:       status.Label(),
		Color:             status.Color(),
		Icon:              status.Icon(),
		EstimatedDelivery: eta,
		CurrentLocation:   location,
		History:           history,
	}
}

// GenerateTrackingNumber returns CJ + the last 8 digits of unix millis + 6 uppercase base36 chars.
func GenerateTrackingNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "CJ" + ms + strings.ToUpper(utils.RandomBase36(6))
}

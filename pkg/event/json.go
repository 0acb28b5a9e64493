package event

import "encoding/json"

// wire is the stored/interchange form of an Event. Both color fields are
// written from the single Color value; backgroundColor wins when they differ
// on the way back in.
type wire struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Start           Timestamp `json:"start"`
	End             Timestamp `json:"end"`
	Description     string    `json:"description"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	color := NormalizeColor(e.Color)
	return json.Marshal(wire{
		ID:              e.ID,
		Title:           e.Title,
		Start:           e.Start,
		End:             e.End,
		Description:     e.Description,
		BackgroundColor: color,
		BorderColor:     color,
	})
}

func (e *Event) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	color := w.BackgroundColor
	if color == "" {
		color = w.BorderColor
	}
	if color == "" {
		color = DefaultColor
	}
	*e = Event{
		ID:          w.ID,
		Title:       w.Title,
		Start:       w.Start,
		End:         w.End,
		Description: w.Description,
		Color:       color,
	}
	return nil
}

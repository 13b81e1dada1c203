package dto

import "time"

type LoadInput struct {
	Path string
}

type CardInput struct {
	Front string
	Back  string
}

type DatasetInput struct {
	Source     string
	FrontField string
	BackField  string
	Cards      []CardInput
}

type AnswerInput struct {
	Known bool
}

type SettingsInput struct {
	FlipDelayMS string
	FontSize    string
	Background  string
	CardFront   string
	CardBack    string
}

type SettingsOutput struct {
	FlipDelay  time.Duration
	FontSize   int
	Background string
	CardFront  string
	CardBack   string
}

// FlipRequest asks the presentation loop to call Expire(Seq) after Delay.
type FlipRequest struct {
	Seq   uint64
	Delay time.Duration
}

// Frame is everything needed to render the current card and score.
type Frame struct {
	SessionID  string
	Source     string
	State      string
	FrontField string
	BackField  string
	Front      string
	Back       string
	Known      int
	Unknown    int
	Remaining  int
	// Flip is set while a flip timer is pending. Several frames can carry
	// the same Seq; callers schedule each Seq once.
	Flip *FlipRequest
}

// Title returns the field name for the visible side.
func (f Frame) Title() string {
	if f.State == "back" {
		return f.BackField
	}
	return f.FrontField
}

// Text returns the word for the visible side.
func (f Frame) Text() string {
	if f.State == "back" {
		return f.Back
	}
	return f.Front
}

func (f Frame) Finished() bool { return f.State == "finished" }

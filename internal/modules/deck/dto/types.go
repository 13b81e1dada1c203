package dto

type LoadInput struct {
	Path string
}

type PairOutput struct {
	Front string
	Back  string
	Extra map[string]string
}

type DatasetOutput struct {
	Source     string
	FrontField string
	BackField  string
	Pairs      []PairOutput
}

package config

// Model describes the autoregressive network architecture.
type Model struct {
	NumHiddenLayers int
	DHidden         int
}

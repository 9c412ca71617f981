package config

import (
	"testing"
)

func TestWord2VecConfigValidation(t *testing.T) {
	// Test valid config
	validConfig := Word2VecConfig{
		Dimensions:    100,
		Window:        2,
		SampleRate:    1e-3,
		Alpha:         0.025,
		Epochs:        5,
		MinCount:      1,
		Approximation: ApproximationNegativeSampling,
		NegativeCount: 1,
	}

	if err := validConfig.Validate(); err != nil {
		t.Errorf("Valid config should not return error: %v", err)
	}

	tests := []struct {
		name   string
		modify func(c *Word2VecConfig)
	}{
		{"dimensions below 5", func(c *Word2VecConfig) { c.Dimensions = 4 }},
		{"window below 1", func(c *Word2VecConfig) { c.Window = 0 }},
		{"window above 5", func(c *Word2VecConfig) { c.Window = 6 }},
		{"negative sample rate", func(c *Word2VecConfig) { c.SampleRate = -0.1 }},
		{"zero alpha", func(c *Word2VecConfig) { c.Alpha = 0 }},
		{"zero epochs", func(c *Word2VecConfig) { c.Epochs = 0 }},
		{"zero min count", func(c *Word2VecConfig) { c.MinCount = 0 }},
		{"zero negative count", func(c *Word2VecConfig) { c.NegativeCount = 0 }},
	}

	for _, test := range tests {
		cfg := validConfig
		test.modify(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("Config with %s should return error", test.name)
		}
	}
}

func TestNegativeCountIgnoredForHierarchicalSoftmax(t *testing.T) {
	cfg := Word2VecConfig{
		Dimensions:    100,
		Window:        2,
		SampleRate:    0,
		Alpha:         0.05,
		Epochs:        1,
		MinCount:      1,
		Approximation: ApproximationHierarchicalSoftmax,
		NegativeCount: 0,
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Negative count should not be validated for hierarchical softmax: %v", err)
	}
}

func TestApproximationString(t *testing.T) {
	tests := []struct {
		approx Approximation
		expect string
	}{
		{ApproximationNegativeSampling, "negative_sampling"},
		{ApproximationHierarchicalSoftmax, "hierarchical_softmax"},
		{Approximation(999), "unknown"},
	}

	for _, test := range tests {
		if got := test.approx.String(); got != test.expect {
			t.Errorf("Expected %s for %v, got %s", test.expect, test.approx, got)
		}
	}
}

func TestParseApproximation(t *testing.T) {
	tests := []struct {
		input  string
		expect Approximation
	}{
		{"negative_sampling", ApproximationNegativeSampling},
		{"hierarchical_softmax", ApproximationHierarchicalSoftmax},
		{"unknown", ApproximationNegativeSampling}, // Default
	}

	for _, test := range tests {
		if got := ParseApproximation(test.input); got != test.expect {
			t.Errorf("Expected %v for %s, got %v", test.expect, test.input, got)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	defaultModel, ok := cfg.Models["default"]
	if !ok {
		t.Fatal("Default config should contain a default model")
	}

	if err := defaultModel.Word2Vec.Validate(); err != nil {
		t.Errorf("Default model config should be valid: %v", err)
	}
}

package word2vec

import (
	"sync"

	"word2vec-db/config"
)

/*
Model represents a single named embedding model
*/
type Model struct {
	Name   string
	Config config.ModelConfig
	W2V    *Word2Vec
	mu     sync.RWMutex
}

/*
Manager handles multiple embedding models
*/
type Manager struct {
	models map[string]*Model
	mu     sync.RWMutex
	config *config.Config
}

/*
NewManager creates a new model manager
*/
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		models: make(map[string]*Model),
		config: cfg,
	}
}

/*
CreateModel creates a new embedding model with the given name and configuration
*/
func (m *Manager) CreateModel(name string, modelConfig config.ModelConfig) (*Model, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.models[name]; exists {
		return nil, ErrModelExists
	}

	w2v, err := NewWord2Vec(modelConfig.Word2Vec)
	if err != nil {
		return nil, err
	}

	model := &Model{
		Name:   name,
		Config: modelConfig,
		W2V:    w2v,
	}

	m.models[name] = model
	return model, nil
}

/*
RestoreModel registers a model loaded from disk under its saved name
*/
func (m *Manager) RestoreModel(model *Model) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.models[model.Name]; exists {
		return ErrModelExists
	}

	m.models[model.Name] = model
	return nil
}

/*
GetModel returns a model by name
*/
func (m *Manager) GetModel(name string) (*Model, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	model, exists := m.models[name]
	if !exists {
		return nil, ErrModelNotFound
	}

	return model, nil
}

/*
DeleteModel removes a model by name
*/
func (m *Manager) DeleteModel(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.models[name]; !exists {
		return ErrModelNotFound
	}

	delete(m.models, name)
	return nil
}

/*
ListModels returns a list of all model names
*/
func (m *Manager) ListModels() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.models))
	for name := range m.models {
		names = append(names, name)
	}
	return names
}

/*
Fit trains a model on raw sentences.

A fresh trainer is constructed for every call and swapped in only when
training succeeds, so a failed fit never leaves a half-trained model behind.
*/
func (m *Manager) Fit(name string, sentences []string) error {
	model, err := m.GetModel(name)
	if err != nil {
		return err
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	w2v, err := NewWord2Vec(model.Config.Word2Vec)
	if err != nil {
		return err
	}

	if err := w2v.Fit(NewTextDataset(sentences)); err != nil {
		return err
	}

	model.W2V = w2v
	return nil
}

/*
MostSimilar performs a similarity query against a specific model
*/
func (m *Manager) MostSimilar(name string, positive, negative []string, topK int) ([]WordSimilarity, error) {
	model, err := m.GetModel(name)
	if err != nil {
		return nil, err
	}

	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.W2V.MostSimilar(positive, negative, topK)
}

/*
EmbedSentence embeds a sentence with a specific model
*/
func (m *Manager) EmbedSentence(name, sentence string) ([]float64, error) {
	model, err := m.GetModel(name)
	if err != nil {
		return nil, err
	}

	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.W2V.EmbedSentence(sentence)
}

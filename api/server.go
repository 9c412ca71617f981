package api

import (
	"encoding/json"
	"net/http"
	"time"

	"word2vec-db/config"
	"word2vec-db/word2vec"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

/*
Server represents the API server
*/
type Server struct {
	manager *word2vec.Manager
}

/*
NewServer creates a new API server
*/
func NewServer(manager *word2vec.Manager) *Server {
	return &Server{
		manager: manager,
	}
}

/*
Start starts the HTTP server
*/
func (s *Server) Start(addr string) error {
	http.HandleFunc("/api/models", s.HandleModels)
	http.HandleFunc("/api/models/", s.handleModel)
	http.HandleFunc("/api/ws", s.handleWebSocket)
	return http.ListenAndServe(addr, nil)
}

/*
HandleModels handles model list and creation
*/
func (s *Server) HandleModels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListModels(w, r)
	case http.MethodPost:
		s.handleCreateModel(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

/*
handleModel handles operations on a single model
*/
func (s *Server) handleModel(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getModel(w, r)
	case http.MethodDelete:
		s.deleteModel(w, r)
	case http.MethodPost:
		s.trainModel(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

/*
handleWebSocket handles WebSocket connections
*/
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Failed to upgrade connection", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	// Set read deadline
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// Handle WebSocket messages
	for {
		messageType, p, err := conn.ReadMessage()
		if err != nil {
			return
		}

		// Process message
		var request map[string]interface{}
		if err := json.Unmarshal(p, &request); err != nil {
			conn.WriteMessage(messageType, []byte(`{"error": "Invalid JSON"}`))
			continue
		}

		// Handle different message types
		switch request["type"] {
		case "most_similar":
			s.handleMostSimilar(conn, messageType, request)
		case "embed_sentence":
			s.handleEmbedSentence(conn, messageType, request)
		default:
			conn.WriteMessage(messageType, []byte(`{"error": "Unknown message type"}`))
		}
	}
}

/*
Helper methods for HTTP handlers
*/
func (s *Server) handleListModels(w http.ResponseWriter, _ *http.Request) {
	models := s.manager.ListModels()
	json.NewEncoder(w).Encode(models)
}

/*
handleCreateModel creates a new model
*/
func (s *Server) handleCreateModel(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name   string
		Config config.ModelConfig
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	model, err := s.manager.CreateModel(request.Name, request.Config)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(modelInfo(model))
}

/*
getModel gets a model by name
*/
func (s *Server) getModel(w http.ResponseWriter, r *http.Request) {
	// Extract model name from URL
	name := r.URL.Path[len("/api/models/"):]
	model, err := s.manager.GetModel(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(modelInfo(model))
}

/*
deleteModel deletes a model by name
*/
func (s *Server) deleteModel(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[len("/api/models/"):]
	if err := s.manager.DeleteModel(name); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/*
trainModel trains a model on the sentences in the request body
*/
func (s *Server) trainModel(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[len("/api/models/"):]
	var request struct {
		Sentences []string `json:"sentences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.manager.Fit(name, request.Sentences); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// modelInfo builds the JSON view of a model
func modelInfo(model *word2vec.Model) map[string]interface{} {
	return map[string]interface{}{
		"name":        model.Name,
		"fitted":      model.W2V.Fitted(),
		"vocab_count": model.W2V.VocabCount(),
		"config":      model.Config,
	}
}

/*
Helper methods for WebSocket handlers
*/
func (s *Server) handleMostSimilar(conn *websocket.Conn, messageType int, request map[string]interface{}) {
	name, _ := request["model"].(string)
	positive := toStringSlice(request["positive"])
	negative := toStringSlice(request["negative"])
	topK := 0
	if k, ok := request["top_k"].(float64); ok {
		topK = int(k)
	}

	results, err := s.manager.MostSimilar(name, positive, negative, topK)
	if err != nil {
		conn.WriteMessage(messageType, []byte(`{"error": "`+err.Error()+`"}`))
		return
	}

	response, _ := json.Marshal(results)
	conn.WriteMessage(messageType, response)
}

func (s *Server) handleEmbedSentence(conn *websocket.Conn, messageType int, request map[string]interface{}) {
	name, _ := request["model"].(string)
	sentence, _ := request["sentence"].(string)

	embedding, err := s.manager.EmbedSentence(name, sentence)
	if err != nil {
		conn.WriteMessage(messageType, []byte(`{"error": "`+err.Error()+`"}`))
		return
	}

	response, _ := json.Marshal(embedding)
	conn.WriteMessage(messageType, response)
}

// toStringSlice converts a decoded JSON array to a string slice
func toStringSlice(value interface{}) []string {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"switchcfg/internal/cisco"

	"github.com/gorilla/mux"
)

type HTTP struct{ svc *Service }

func NewHTTP(s *Service) *HTTP { return &HTTP{svc: s} }

func (h *HTTP) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()

	// banner, with and without trailing slash
	api.HandleFunc("", h.root).Methods(http.MethodGet)
	api.HandleFunc("/", h.root).Methods(http.MethodGet)

	// ports
	api.HandleFunc("/ports", h.createPort).Methods(http.MethodPost)
	api.HandleFunc("/ports", h.listPorts).Methods(http.MethodGet)
	api.HandleFunc("/ports", h.deletePorts).Methods(http.MethodDelete)

	// interface names carry slashes (Gi1/0/1), hence the catch-all matcher
	api.HandleFunc("/ports/{port_name:.+}", h.getPort).Methods(http.MethodGet)
	api.HandleFunc("/ports/{port_name:.+}", h.updatePort).Methods(http.MethodPut, http.MethodPatch)

	// generation
	api.HandleFunc("/generate-code", h.generateCode).Methods(http.MethodPost)
	api.HandleFunc("/config-types", h.configTypes).Methods(http.MethodGet)
}

func (h *HTTP) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Switch Configuration API"})
}

func (h *HTTP) createPort(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SwitchNumber *int    `json:"switch_number"`
		PortType     string  `json:"port_type"`
		PortName     string  `json:"port_name"`
		ConfigType   string  `json:"config_type"`
		Description  *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if in.SwitchNumber == nil {
		http.Error(w, "switch_number required", http.StatusBadRequest)
		return
	}
	in.PortName = strings.TrimSpace(in.PortName)
	in.PortType = strings.TrimSpace(in.PortType)
	in.ConfigType = strings.TrimSpace(in.ConfigType)
	if in.PortName == "" || in.PortType == "" || in.ConfigType == "" {
		http.Error(w, "port_name, port_type and config_type required", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(CreateInput{
		SwitchNumber: *in.SwitchNumber,
		PortType:     in.PortType,
		PortName:     in.PortName,
		ConfigType:   in.ConfigType,
		Description:  in.Description,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *HTTP) listPorts(w http.ResponseWriter, r *http.Request) {
	sw, err := intQuery(r, "switch_number")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f := Filter{SwitchNumber: sw}
	if pt := r.URL.Query().Get("port_type"); pt != "" {
		f.PortType = &pt
	}
	recs, err := h.svc.List(f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *HTTP) getPort(w http.ResponseWriter, r *http.Request) {
	portName := mux.Vars(r)["port_name"]
	sw, err := requireIntQuery(r, "switch_number")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec, err := h.svc.Get(portName, sw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// absent port encodes as null, not 404: absence is a valid answer
	writeJSON(w, http.StatusOK, rec)
}

func (h *HTTP) updatePort(w http.ResponseWriter, r *http.Request) {
	portName := mux.Vars(r)["port_name"]
	sw, err := requireIntQuery(r, "switch_number")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var in struct {
		ConfigType  string  `json:"config_type"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	in.ConfigType = strings.TrimSpace(in.ConfigType)
	if in.ConfigType == "" {
		http.Error(w, "config_type required", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Update(portName, sw, in.ConfigType, in.Description)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Port not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *HTTP) deletePorts(w http.ResponseWriter, r *http.Request) {
	sw, err := intQuery(r, "switch_number")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n, err := h.svc.DeleteAll(sw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted_count": n})
}

func (h *HTTP) generateCode(w http.ResponseWriter, r *http.Request) {
	sw, err := requireIntQuery(r, "switch_number")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	portType := r.URL.Query().Get("port_type")
	if portType == "" {
		http.Error(w, "port_type required", http.StatusBadRequest)
		return
	}
	code, count, err := h.svc.GenerateCode(sw, portType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"code": code, "port_count": count})
}

func (h *HTTP) configTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"config_types": cisco.Roles()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func intQuery(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &v, nil
}

func requireIntQuery(r *http.Request, key string) (int, error) {
	v, err := intQuery(r, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%s query param required", key)
	}
	return *v, nil
}

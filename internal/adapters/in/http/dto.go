package http

import (
	"time"

	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/core/domain/model/pedido"
)

type errorBody struct {
	Error string `json:"error"`
}

type createPedidoRequest struct {
	RequesterUsername string         `json:"requesterUsername"`
	ItemsSolicitados  map[string]int `json:"itemsSolicitados"`
	Servicio          string         `json:"servicio"`
	Observacion       string         `json:"observacion"`
}

type assignMachinesRequest struct {
	Asignadas     []string `json:"asignadas"`
	Justificacion string   `json:"justificacion"`
	Usuario       string   `json:"usuario"`
}

type actorRequest struct {
	Usuario     string `json:"usuario"`
	Observacion string `json:"observacion"`
}

type registerReturnRequest struct {
	Devueltas     []string `json:"devueltas"`
	Justificacion string   `json:"justificacion"`
	Usuario       string   `json:"usuario"`
}

type confirmReturnRequest struct {
	Devueltas   []string `json:"devueltas"`
	Faltantes   []string `json:"faltantes"`
	Usuario     string   `json:"usuario"`
	Observacion string   `json:"observacion"`
}

type declareMissingRequest struct {
	Devueltas   []string `json:"devueltas"`
	Usuario     string   `json:"usuario"`
	Observacion string   `json:"observacion"`
}

type overrideStatusRequest struct {
	Estado  string `json:"estado"`
	Usuario string `json:"usuario"`
}

type registerMachineRequest struct {
	ID       string `json:"id"`
	Tipo     string `json:"tipo"`
	Modelo   string `json:"modelo"`
	Serial   string `json:"serial"`
	Servicio string `json:"servicio"`
	Estado   string `json:"estado"`
}

type updateMachineRequest struct {
	Modelo   string `json:"modelo"`
	Serial   string `json:"serial"`
	Servicio string `json:"servicio"`
	Estado   string `json:"estado"`
}

type pedidoResponse struct {
	ID                string             `json:"id"`
	RequesterUsername string             `json:"requesterUsername"`
	Servicio          string             `json:"servicio"`
	Estado            string             `json:"estado"`
	ItemsSolicitados  map[string]int     `json:"itemsSolicitados"`
	Asignadas         []machine.Snapshot `json:"asignadas"`
	Devueltas         []string           `json:"devueltas"`
	Observacion       string             `json:"observacion,omitempty"`
	HasMissing        bool               `json:"hasMissing"`
	Historial         []historyResponse  `json:"historial"`
}

type historyResponse struct {
	Action    string        `json:"accion"`
	Actor     string        `json:"usuario"`
	Timestamp time.Time     `json:"fecha"`
	Detail    pedido.Detail `json:"detalle"`
}

type machineResponse struct {
	ID       string `json:"id"`
	Tipo     string `json:"tipo"`
	Modelo   string `json:"modelo"`
	Serial   string `json:"serial,omitempty"`
	Servicio string `json:"servicio,omitempty"`
	Estado   string `json:"estado"`
}

func pedidoFromDomain(p *pedido.Pedido) pedidoResponse {
	history := make([]historyResponse, 0, len(p.History()))
	for _, entry := range p.History() {
		history = append(history, historyResponse{
			Action:    entry.Action().String(),
			Actor:     entry.Actor(),
			Timestamp: entry.Timestamp(),
			Detail:    entry.Detail(),
		})
	}

	return pedidoResponse{
		ID:                p.ID().String(),
		RequesterUsername: p.Requester(),
		Servicio:          p.Service(),
		Estado:            p.Status().String(),
		ItemsSolicitados:  p.RequestedItems(),
		Asignadas:         p.AssignedItems(),
		Devueltas:         p.ReturnedItems(),
		Observacion:       p.Note(),
		HasMissing:        p.HasMissingMachines(),
		Historial:         history,
	}
}

func machineFromDomain(m *machine.Machine) machineResponse {
	return machineResponse{
		ID:       m.ID(),
		Tipo:     m.Type(),
		Modelo:   m.Model(),
		Serial:   m.Serial(),
		Servicio: m.Service(),
		Estado:   m.State().String(),
	}
}

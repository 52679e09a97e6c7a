// Package http is the inbound HTTP adapter: an echo server exposing the
// pedido lifecycle, the machine inventory and the read-side views. Request
// and response bodies use the Spanish wire keys of the original API.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fleetrent/internal/core/application/usecases/commands"
	"fleetrent/internal/core/application/usecases/queries"
	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createPedido   commands.CreatePedidoCommandHandler
	assignMachines commands.AssignMachinesCommandHandler
	markDelivered  commands.MarkDeliveredCommandHandler
	registerReturn commands.RegisterReturnCommandHandler
	confirmReturn  commands.ConfirmReturnCommandHandler
	declareMissing commands.DeclareMissingReturnedCommandHandler
	overrideStatus commands.OverrideStatusCommandHandler
	deletePedido   commands.DeletePedidoCommandHandler
	registerMach   commands.RegisterMachineCommandHandler
	updateMach     commands.UpdateMachineCommandHandler

	getPedido    queries.GetPedidoQueryHandler
	listPedidos  queries.ListPedidosQueryHandler
	listMachines queries.ListMachinesQueryHandler
	stockSummary queries.StockSummaryQueryHandler

	logger *slog.Logger
}

// Handlers groups every use case the server exposes.
type Handlers struct {
	CreatePedido   commands.CreatePedidoCommandHandler
	AssignMachines commands.AssignMachinesCommandHandler
	MarkDelivered  commands.MarkDeliveredCommandHandler
	RegisterReturn commands.RegisterReturnCommandHandler
	ConfirmReturn  commands.ConfirmReturnCommandHandler
	DeclareMissing commands.DeclareMissingReturnedCommandHandler
	OverrideStatus commands.OverrideStatusCommandHandler
	DeletePedido   commands.DeletePedidoCommandHandler
	RegisterMach   commands.RegisterMachineCommandHandler
	UpdateMach     commands.UpdateMachineCommandHandler

	GetPedido    queries.GetPedidoQueryHandler
	ListPedidos  queries.ListPedidosQueryHandler
	ListMachines queries.ListMachinesQueryHandler
	StockSummary queries.StockSummaryQueryHandler
}

// NewServer creates the HTTP server with all use case handlers wired.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		createPedido:   h.CreatePedido,
		assignMachines: h.AssignMachines,
		markDelivered:  h.MarkDelivered,
		registerReturn: h.RegisterReturn,
		confirmReturn:  h.ConfirmReturn,
		declareMissing: h.DeclareMissing,
		overrideStatus: h.OverrideStatus,
		deletePedido:   h.DeletePedido,
		registerMach:   h.RegisterMach,
		updateMach:     h.UpdateMach,
		getPedido:      h.GetPedido,
		listPedidos:    h.ListPedidos,
		listMachines:   h.ListMachines,
		stockSummary:   h.StockSummary,
		logger:         logger.With("component", "http"),
	}
}

// RegisterRoutes declares every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/pedidos", s.CreatePedido)
	e.GET("/pedidos", s.ListPedidos)
	e.GET("/pedidos/:id", s.GetPedido)
	e.POST("/pedidos/:id/asignar", s.AssignMachines)
	e.POST("/pedidos/:id/entregar", s.MarkDelivered)
	e.POST("/pedidos/:id/devolucion", s.RegisterReturn)
	e.POST("/pedidos/:id/confirmar-devolucion", s.ConfirmReturn)
	e.POST("/pedidos/:id/declarar-faltantes", s.DeclareMissing)
	e.PUT("/pedidos/:id/estado", s.OverrideStatus)
	e.DELETE("/pedidos/:id", s.DeletePedido)

	e.POST("/maquinas", s.RegisterMachine)
	e.PUT("/maquinas/:id", s.UpdateMachine)
	e.GET("/maquinas", s.ListMachines)
	e.GET("/stock/resumen", s.StockSummary)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreatePedido handles POST /pedidos.
func (s *Server) CreatePedido(ctx echo.Context) error {
	var req createPedidoRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreatePedidoCommand(
		req.RequesterUsername, req.Servicio, req.ItemsSolicitados, req.Observacion,
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	p, err := s.createPedido.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromDomain(p))
}

// ListPedidos handles GET /pedidos with an optional estado filter.
func (s *Server) ListPedidos(ctx echo.Context) error {
	query, err := queries.NewListPedidosQuery(ctx.QueryParam("estado"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	pedidos, err := s.listPedidos.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidos)
}

// GetPedido handles GET /pedidos/:id.
func (s *Server) GetPedido(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetPedidoQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	p, err := s.getPedido.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, p)
}

// AssignMachines handles POST /pedidos/:id/asignar.
func (s *Server) AssignMachines(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req assignMachinesRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	actor, err := kernel.NewActor(req.Usuario)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignMachinesCommand(id, req.Asignadas, req.Justificacion, actor)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	p, err := s.assignMachines.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromDomain(p))
}

// MarkDelivered handles POST /pedidos/:id/entregar.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req actorRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	actor, err := kernel.NewActor(req.Usuario)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(id, req.Observacion, actor)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	p, err := s.markDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromDomain(p))
}

// RegisterReturn handles POST /pedidos/:id/devolucion.
func (s *Server) RegisterReturn(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req registerReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	actor, err := kernel.NewActor(req.Usuario)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewRegisterReturnCommand(id, req.Devueltas, req.Justificacion, actor)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	p, err := s.registerReturn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromDomain(p))
}

// ConfirmReturn handles POST /pedidos/:id/confirmar-devolucion.
func (s *Server) ConfirmReturn(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req confirmReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	actor, err := kernel.NewActor(req.Usuario)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmReturnCommand(id, req.Devueltas, req.Faltantes, req.Observacion, actor)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	p, err := s.confirmReturn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromDomain(p))
}

// DeclareMissing handles POST /pedidos/:id/declarar-faltantes.
func (s *Server) DeclareMissing(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req declareMissingRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	actor, err := kernel.NewActor(req.Usuario)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeclareMissingReturnedCommand(id, req.Devueltas, req.Observacion, actor)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	p, err := s.declareMissing.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromDomain(p))
}

// OverrideStatus handles PUT /pedidos/:id/estado.
func (s *Server) OverrideStatus(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req overrideStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	actor, err := kernel.NewActor(req.Usuario)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewOverrideStatusCommand(id, req.Estado, actor)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	p, err := s.overrideStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromDomain(p))
}

// DeletePedido handles DELETE /pedidos/:id.
func (s *Server) DeletePedido(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeletePedidoCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.deletePedido.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterMachine handles POST /maquinas.
func (s *Server) RegisterMachine(ctx echo.Context) error {
	var req registerMachineRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterMachineCommand(
		req.ID, req.Tipo, req.Modelo, req.Serial, req.Servicio, req.Estado,
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	m, err := s.registerMach.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, machineFromDomain(m))
}

// UpdateMachine handles PUT /maquinas/:id.
func (s *Server) UpdateMachine(ctx echo.Context) error {
	var req updateMachineRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateMachineCommand(
		ctx.Param("id"), req.Modelo, req.Serial, req.Servicio, req.Estado,
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	m, err := s.updateMach.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, machineFromDomain(m))
}

// ListMachines handles GET /maquinas with an optional tipo filter.
func (s *Server) ListMachines(ctx echo.Context) error {
	query := queries.NewListMachinesQuery(ctx.QueryParam("tipo"))

	machines, err := s.listMachines.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, machines)
}

// StockSummary handles GET /stock/resumen.
func (s *Server) StockSummary(ctx echo.Context) error {
	summary, err := s.stockSummary.Handle(ctx.Request().Context(), queries.NewStockSummaryQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{Error: message})
}

// errorResponse maps the domain error taxonomy onto status codes: required
// and invalid values are 400, unknown objects 404, conflicts 409. Anything
// else is logged server-side and answered with a generic 500.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, errorBody{Error: err.Error()})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "unhandled error",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

// ClientHandler handles HTTP requests for clients and their cases.
// Service errors are returned unchanged; the echo error handler maps them.
type ClientHandler struct {
	clients ports.ClientService
	cases   ports.CaseService
}

func NewClientHandler(clients ports.ClientService, cases ports.CaseService) *ClientHandler {
	return &ClientHandler{clients: clients, cases: cases}
}

// List handles GET /api/clients.
//
// @Summary      List active clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring of name, email or company name"
// @Success      200     {array}   clientResponse
// @Failure      401     {object}  map[string]string
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		clients []*domain.Client
		err     error
	)
	if term := c.QueryParam("search"); term != "" {
		clients, err = h.clients.Search(ctx, term)
	} else {
		clients, err = h.clients.ListActive(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponses(clients))
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get an active client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	client, err := h.clients.GetActive(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create handles POST /api/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string         false  "Replays the first response for a repeated key"
// @Param        body             body      clientRequest  true   "Client details"
// @Success      201              {object}  clientResponse
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	client, err := h.clients.Create(c.Request().Context(), toCreateInput(req, c.Request().Header.Get("Idempotency-Key")))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/clients/%d", client.ID))
	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// Update handles PUT /api/clients/:id.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Client id"
// @Param        body  body      clientRequest  true  "Replacement fields"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	client, err := h.clients.Update(c.Request().Context(), toUpdateInput(id, req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete handles DELETE /api/clients/:id. The client is deactivated, not removed.
//
// @Summary      Deactivate a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id   path  int  true  "Client id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.clients.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Cases handles GET /api/clients/:id/cases.
//
// @Summary      List the cases of an active client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {array}   caseResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id}/cases [get]
func (h *ClientHandler) Cases(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cases, err := h.cases.CasesForClient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseResponses(cases))
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
)

// Handler serves POST /graphql (JSON body) and GET /graphql (query string).
type Handler struct {
	schema graphql.Schema
}

func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

type request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Serve executes one GraphQL operation. Execution errors are reported in
// the response body with status 200; only unreadable requests get 400.
//
// @Summary      Execute a GraphQL operation
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        body  body      request  true  "GraphQL request"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /graphql [post]
func (h *Handler) Serve(c echo.Context) error {
	req, err := decodeRequest(c)
	if err != nil {
		return err
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})
	return c.JSON(http.StatusOK, result)
}

func decodeRequest(c echo.Context) (request, error) {
	var req request

	if c.Request().Method == http.MethodGet {
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if vars := c.QueryParam("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				return req, echo.NewHTTPError(http.StatusBadRequest, "invalid variables")
			}
		}
	} else if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if req.Query == "" {
		return req, echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	return req, nil
}

package serve

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frenchnum/frenchnum/internal/namer/cli/utils"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output/general"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// convertResponse type used to describe named numbers of one dialect.
type convertResponse struct {
	Dialect string               `json:"dialect"`
	Rows    []models.NamedNumber `json:"rows"`
}

func setupRoutes(opts handlerOptions, e *echo.Echo) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.GET("/name/:number", toEchoHandler(opts, handleName), rejectRequestWithBody)
	e.GET("/status/:taskID", toEchoHandler(opts, handleStatus), rejectRequestWithBody)

	post := e.Group("", rejectRequestWithMissingLength, middleware.BodyLimit("1M"))
	post.POST("/convert", toEchoHandler(opts, handleConvert))
	post.POST("/convert-config", toEchoHandler(opts, handleConvertConfig))
	post.POST("/validate-config", toEchoHandler(opts, handleValidate))
}

// handleName handler for endpoint 'name'.
func handleName(opts handlerOptions, c echo.Context) error {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		return sendResponse(c, "json", http.StatusBadRequest, response{
			Message: "Number is not an integer",
			Error:   err.Error(),
		})
	}

	ascii := false

	if value := c.QueryParam("ascii"); value != "" {
		ascii, err = strconv.ParseBool(value)
		if err != nil {
			return sendResponse(c, "json", http.StatusBadRequest, response{
				Message: "Invalid ascii parameter",
				Error:   err.Error(),
			})
		}
	}

	dialect, err := resolveDialect(opts, c.QueryParam("dialect"))
	if err != nil {
		return sendResponse(c, "json", http.StatusBadRequest, response{
			Message: "Unknown dialect",
			Error:   err.Error(),
		})
	}

	rows, err := opts.useCase.Name(dialect, []int64{number}, ascii)
	if err != nil {
		return sendResponse(c, "json", namingErrorStatus(err), response{
			Message: "Unable to name number",
			Error:   err.Error(),
		})
	}

	return sendResponse(c, "json", http.StatusOK, rows[0])
}

// handleConvert handler for endpoint 'convert'.
func handleConvert(opts handlerOptions, c echo.Context) error {
	body, err := getRequestBody(c)
	if err != nil {
		return sendResponse(c, "json", http.StatusInternalServerError, response{
			Message: "Unable to read request body",
			Error:   err.Error(),
		})
	}

	var request convertRequest

	if err = json.Unmarshal(body, &request); err != nil {
		return sendResponse(c, "json", http.StatusBadRequest, response{
			Message: "Invalid request body",
			Error:   err.Error(),
		})
	}

	dialect, err := resolveDialect(opts, request.Dialect)
	if err != nil {
		return sendResponse(c, "json", http.StatusBadRequest, response{
			Message: "Unknown dialect",
			Error:   err.Error(),
		})
	}

	rows, err := opts.useCase.Name(dialect, request.Numbers, request.ASCII)
	if err != nil {
		return sendResponse(c, "json", namingErrorStatus(err), response{
			Message: "Unable to name numbers",
			Error:   err.Error(),
		})
	}

	if rows == nil {
		rows = []models.NamedNumber{}
	}

	return sendResponse(c, "json", http.StatusOK, convertResponse{
		Dialect: dialect,
		Rows:    rows,
	})
}

// handleConvertConfig handler for endpoint 'convert-config'.
func handleConvertConfig(opts handlerOptions, c echo.Context) error {
	body, err := getRequestBody(c)
	if err != nil {
		return sendResponse(c, "json", http.StatusInternalServerError, response{
			Message: "Unable to read request body",
			Error:   err.Error(),
		})
	}

	var conversionConfig models.ConversionConfig

	err = conversionConfig.ParseFromJSON(body)
	if err != nil {
		return sendResponse(c, "json", http.StatusBadRequest, response{
			Message: "Conversion config is not valid",
			Error:   err.Error(),
		})
	}

	conversionConfig.OutputConfig.Dir = models.DefaultOutputDir

	out := general.NewOutput(&conversionConfig, opts.fs, true)

	taskID, err := opts.useCase.CreateTask(opts.taskCtx, usecase.TaskConfig{
		ConversionConfig: &conversionConfig,
		Output:           out,
		HTTPDelivery:     true,
	})
	if err != nil {
		return sendResponse(c, "json", http.StatusInternalServerError, response{
			Message: "Failed to start conversion",
			Error:   err.Error(),
		})
	}

	return sendResponse(c, "string", http.StatusOK, taskID)
}

// handleValidate handler for endpoint 'validate-config'.
func handleValidate(_ handlerOptions, c echo.Context) error {
	body, err := getRequestBody(c)
	if err != nil {
		return sendResponse(c, "json", http.StatusInternalServerError, response{
			Message: "Unable to read request body",
			Error:   err.Error(),
		})
	}

	var conversionConfig models.ConversionConfig

	err = conversionConfig.ParseFromJSON(body)
	if err != nil {
		return sendResponse(c, "json", http.StatusBadRequest, response{
			Message: "Conversion config is not valid",
			Error:   err.Error(),
		})
	}

	return sendResponse(c, "json", http.StatusOK, response{
		Message: "Conversion config is valid",
	})
}

// handleStatus handler for endpoint 'status'.
func handleStatus(opts handlerOptions, c echo.Context) error {
	taskID := c.Param("taskID")

	finished, err := opts.useCase.GetResult(taskID)
	if err != nil {
		return sendResponse(c, "json", http.StatusInternalServerError, response{
			Message: "Failed to retrieve conversion result",
			Error:   err.Error(),
		})
	}

	if finished {
		return sendResponse(c, "json", http.StatusOK, response{
			Message: "Conversion completed successfully",
		})
	}

	progresses, err := opts.useCase.GetProgress(taskID)
	if err != nil {
		return sendResponse(c, "json", http.StatusInternalServerError, response{
			Message: "Failed to retrieve conversion progress",
			Error:   err.Error(),
		})
	}

	progressByDialect := make(map[string]uint64, len(progresses))

	for dialect, progress := range progresses {
		progressByDialect[dialect] = utils.GetPercentage(progress.Total, progress.Done)
	}

	return sendResponse(c, "json", http.StatusOK, progressByDialect)
}

package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"church-finder-service/internal/modules/confession/domain"
	"church-finder-service/pkg/shared"
	"church-finder-service/pkg/shared/usecase"

	"github.com/golangid/candi/candihelper"
	restserver "github.com/golangid/candi/codebase/app/rest_server"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/tracer"
	"github.com/golangid/candi/wrapper"
)

// RestHandler handler
type RestHandler struct {
	mw        interfaces.Middleware
	uc        usecase.Usecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(deps dependency.Dependency, uc usecase.Usecase) *RestHandler {
	return &RestHandler{
		uc: uc, mw: deps.GetMiddleware(), validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root interfaces.RESTRouter) {
	confession := root.Group(candihelper.V1 + "/confession")

	recurring := confession.Group("/recurring")
	recurring.GET("/", h.getAllRecurringConfession)
	recurring.POST("/", h.createRecurringConfession)
	recurring.PUT("/{id}", h.updateRecurringConfession)
	recurring.DELETE("/{id}", h.deleteRecurringConfession)

	live := confession.Group("/live")
	live.GET("/", h.getAllLiveConfession)
	live.POST("/", h.createLiveConfession)
	live.DELETE("/{id}", h.deleteLiveConfession)
}

func (h *RestHandler) getAllRecurringConfession(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ConfessionDeliveryREST:GetAllRecurringConfession")
	defer trace.Finish()

	var filter domain.FilterConfession
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, meta, err := h.uc.Confession().GetAllRecurringConfession(ctx, &filter)
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", meta, data).JSON(rw)
}

func (h *RestHandler) createRecurringConfession(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ConfessionDeliveryREST:CreateRecurringConfession")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("confession/save_recurring", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestRecurringConfession
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}

	data, err := h.uc.Confession().CreateRecurringConfession(ctx, &payload)
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusCreated, "Success", data).JSON(rw)
}

func (h *RestHandler) updateRecurringConfession(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ConfessionDeliveryREST:UpdateRecurringConfession")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("confession/save_recurring", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestRecurringConfession
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}
	payload.ID = restserver.URLParam(req, "id")

	if err := h.uc.Confession().UpdateRecurringConfession(ctx, &payload); err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success").JSON(rw)
}

func (h *RestHandler) deleteRecurringConfession(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ConfessionDeliveryREST:DeleteRecurringConfession")
	defer trace.Finish()

	if err := h.uc.Confession().DeleteRecurringConfession(ctx, restserver.URLParam(req, "id")); err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success").JSON(rw)
}

func (h *RestHandler) getAllLiveConfession(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ConfessionDeliveryREST:GetAllLiveConfession")
	defer trace.Finish()

	var filter domain.FilterConfession
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, err := h.uc.Confession().GetAllLiveConfession(ctx, &filter)
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) createLiveConfession(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ConfessionDeliveryREST:CreateLiveConfession")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("confession/save_live", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestLiveConfession
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}

	data, err := h.uc.Confession().CreateLiveConfession(ctx, &payload)
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusCreated, "Success", data).JSON(rw)
}

func (h *RestHandler) deleteLiveConfession(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ConfessionDeliveryREST:DeleteLiveConfession")
	defer trace.Finish()

	if err := h.uc.Confession().DeleteLiveConfession(ctx, restserver.URLParam(req, "id")); err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success").JSON(rw)
}

package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"church-finder-service/internal/modules/church/domain"
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
	church := root.Group(candihelper.V1 + "/church")
	church.GET("/", h.getAllChurch)
	church.GET("/{id}", h.getDetailChurchByID)
	church.POST("/", h.createChurch)
	church.PUT("/{id}", h.updateChurch)
	church.DELETE("/{id}", h.deleteChurch)

	// core lookups
	church.GET("/near/{latlng}", h.findNearbyChurch)
	church.GET("/masses/{time}", h.searchChurchByMassSchedule)
	church.GET("/confessions/{time}", h.searchChurchByConfession)
}

func (h *RestHandler) getAllChurch(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ChurchDeliveryREST:GetAllChurch")
	defer trace.Finish()

	var filter domain.FilterChurch
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, meta, err := h.uc.Church().GetAllChurch(ctx, &filter)
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", meta, data).JSON(rw)
}

func (h *RestHandler) getDetailChurchByID(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ChurchDeliveryREST:GetDetailChurchByID")
	defer trace.Finish()

	data, err := h.uc.Church().GetDetailChurch(ctx, restserver.URLParam(req, "id"))
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) createChurch(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ChurchDeliveryREST:CreateChurch")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("church/save", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestChurch
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}

	data, err := h.uc.Church().CreateChurch(ctx, &payload)
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusCreated, "Success", data).JSON(rw)
}

func (h *RestHandler) updateChurch(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ChurchDeliveryREST:UpdateChurch")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("church/save", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestChurch
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}
	payload.ID = restserver.URLParam(req, "id")

	if err := h.uc.Church().UpdateChurch(ctx, &payload); err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success").JSON(rw)
}

func (h *RestHandler) deleteChurch(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ChurchDeliveryREST:DeleteChurch")
	defer trace.Finish()

	if err := h.uc.Church().DeleteChurch(ctx, restserver.URLParam(req, "id")); err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success").JSON(rw)
}

func (h *RestHandler) findNearbyChurch(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ChurchDeliveryREST:FindNearbyChurch")
	defer trace.Finish()

	data, err := h.uc.Church().FindNearbyChurch(ctx, restserver.URLParam(req, "latlng"), req.URL.Query())
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) searchChurchByMassSchedule(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ChurchDeliveryREST:SearchChurchByMassSchedule")
	defer trace.Finish()

	data, err := h.uc.Church().SearchChurchByMassSchedule(ctx, restserver.URLParam(req, "time"), req.URL.Query())
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) searchChurchByConfession(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ChurchDeliveryREST:SearchChurchByConfession")
	defer trace.Finish()

	data, err := h.uc.Church().SearchChurchByConfession(ctx, restserver.URLParam(req, "time"), req.URL.Query())
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

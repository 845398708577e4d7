package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/dto/requests"
	"consultant-discovery/internal/pkg/exceptions"
	"consultant-discovery/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DiscoveryController struct {
	Log              *zap.Logger
	DiscoveryUsecase contracts.DiscoveryUsecase
}

var (
	discoveryControllerInstance *DiscoveryController
	onceDiscoveryController     sync.Once
)

func NewDiscoveryController(logger *zap.Logger, discoveryUsecase contracts.DiscoveryUsecase) *DiscoveryController {
	onceDiscoveryController.Do(func() {
		instance := &DiscoveryController{
			Log:              logger,
			DiscoveryUsecase: discoveryUsecase,
		}
		discoveryControllerInstance = instance
	})
	return discoveryControllerInstance
}

func (ctrl *DiscoveryController) GetView(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DiscoveryController.GetView")
	if !ok {
		return
	}

	view := ctrl.DiscoveryUsecase.View()

	ctrl.Log.Info("DiscoveryController.GetView succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingVisibleCountKey, view.List.Count),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetViewSuccessMessage, view)
}

func (ctrl *DiscoveryController) UpdateSearchText(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DiscoveryController.UpdateSearchText")
	if !ok {
		return
	}

	request := new(requests.UpdateSearchText)
	if !ctrl.parseBody(w, r, request, requestID, "DiscoveryController.UpdateSearchText") {
		return
	}

	ctrl.DiscoveryUsecase.SearchTextChanged(request.Text)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateFiltersSuccessMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) UpdateSpecialty(w http.ResponseWriter, r *http.Request) {
	ctrl.updateDropdown(w, r, "DiscoveryController.UpdateSpecialty", ctrl.DiscoveryUsecase.SpecialtyChanged)
}

func (ctrl *DiscoveryController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	ctrl.updateDropdown(w, r, "DiscoveryController.UpdateAvailability", ctrl.DiscoveryUsecase.AvailabilityChanged)
}

func (ctrl *DiscoveryController) UpdateRating(w http.ResponseWriter, r *http.Request) {
	ctrl.updateDropdown(w, r, "DiscoveryController.UpdateRating", ctrl.DiscoveryUsecase.RatingChanged)
}

func (ctrl *DiscoveryController) updateDropdown(w http.ResponseWriter, r *http.Request, operation string, change func(string)) {
	requestID, ok := ctrl.requestID(w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpdateFilterValue)
	if !ctrl.parseBody(w, r, request, requestID, operation) {
		return
	}

	change(request.Value)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateFiltersSuccessMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) ClearFilters(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctrl.requestID(w, r, "DiscoveryController.ClearFilters"); !ok {
		return
	}

	ctrl.DiscoveryUsecase.ClearFilters()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearFiltersSuccessMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) SetManualLocation(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DiscoveryController.SetManualLocation")
	if !ok {
		return
	}

	request := new(requests.SetManualLocation)
	if !ctrl.parseBody(w, r, request, requestID, "DiscoveryController.SetManualLocation") {
		return
	}

	_, err := ctrl.DiscoveryUsecase.SetManualLocation(r.Context(), request.Place)
	if err != nil {
		ctrl.fail(w, err, requestID, "DiscoveryController.SetManualLocation")
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateLocationSuccessMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) Locate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DiscoveryController.Locate")
	if !ok {
		return
	}

	_, err := ctrl.DiscoveryUsecase.Locate(r.Context())
	if err != nil {
		ctrl.fail(w, err, requestID, "DiscoveryController.Locate")
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateLocationSuccessMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) FocusConsultant(w http.ResponseWriter, r *http.Request) {
	ctrl.consultantAction(w, r, "DiscoveryController.FocusConsultant", constvars.FocusConsultantSuccessMessage, ctrl.DiscoveryUsecase.FocusConsultant)
}

func (ctrl *DiscoveryController) OpenBooking(w http.ResponseWriter, r *http.Request) {
	ctrl.consultantAction(w, r, "DiscoveryController.OpenBooking", constvars.OpenBookingSuccessMessage, ctrl.DiscoveryUsecase.OpenBooking)
}

func (ctrl *DiscoveryController) consultantAction(w http.ResponseWriter, r *http.Request, operation, message string, action func(models.ConsultantID) error) {
	requestID, ok := ctrl.requestID(w, r, operation)
	if !ok {
		return
	}

	request := new(requests.ConsultantAction)
	if !ctrl.parseBody(w, r, request, requestID, operation) {
		return
	}

	err := action(models.ConsultantID(request.ConsultantID))
	if err != nil {
		ctrl.fail(w, err, requestID, operation)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) UpdateBookingDraft(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DiscoveryController.UpdateBookingDraft")
	if !ok {
		return
	}

	request := new(requests.UpdateBookingDraft)
	if !ctrl.parseBody(w, r, request, requestID, "DiscoveryController.UpdateBookingDraft") {
		return
	}

	err := ctrl.DiscoveryUsecase.UpdateBookingDraft(models.BookingDraftPatch{
		SessionType: request.SessionType,
		DateTime:    request.DateTime,
		Email:       request.Email,
		Phone:       request.Phone,
	})
	if err != nil {
		ctrl.fail(w, err, requestID, "DiscoveryController.UpdateBookingDraft")
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingDraftSuccessMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DiscoveryController.SubmitBooking")
	if !ok {
		return
	}

	err := ctrl.DiscoveryUsecase.SubmitBooking(r.Context())
	if err != nil {
		ctrl.fail(w, err, requestID, "DiscoveryController.SubmitBooking")
		return
	}

	ctrl.Log.Info("DiscoveryController.SubmitBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitBookingSuccessMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) CloseBooking(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DiscoveryController.CloseBooking")
	if !ok {
		return
	}

	err := ctrl.DiscoveryUsecase.CloseBooking()
	if err != nil {
		ctrl.fail(w, err, requestID, "DiscoveryController.CloseBooking")
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CloseBookingSuccessMessage, ctrl.DiscoveryUsecase.View())
}

// DialogOutsideClick never fails; a click outside a submitting dialog is simply ignored.
func (ctrl *DiscoveryController) DialogOutsideClick(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctrl.requestID(w, r, "DiscoveryController.DialogOutsideClick"); !ok {
		return
	}

	ctrl.DiscoveryUsecase.DialogOutsideClick()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CloseBookingSuccessMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) DismissNotification(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DiscoveryController.DismissNotification")
	if !ok {
		return
	}

	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)
	err := ctrl.DiscoveryUsecase.DismissNotification(notificationID)
	if err != nil {
		ctrl.fail(w, err, requestID, "DiscoveryController.DismissNotification")
		return
	}

	ctrl.Log.Info("DiscoveryController.DismissNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationKey, notificationID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DismissNotificationMessage, ctrl.DiscoveryUsecase.View())
}

func (ctrl *DiscoveryController) requestID(w http.ResponseWriter, r *http.Request, operation string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	ctrl.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

func (ctrl *DiscoveryController) parseBody(w http.ResponseWriter, r *http.Request, dst interface{}, requestID, operation string) bool {
	err := utils.ParseJSONBody(r, dst)
	if err != nil {
		ctrl.Log.Error(operation+" error parsing request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return false
	}
	return true
}

func (ctrl *DiscoveryController) fail(w http.ResponseWriter, err error, requestID, operation string) {
	ctrl.Log.Error(operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

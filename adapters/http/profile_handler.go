package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/J33rry/predusk/internal/application/usecase/profile"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type ProfileHandler struct {
	createProfileUseCase *profileUC.CreateProfileUseCase
	getProfileUseCase    *profileUC.GetProfileUseCase
	listProfilesUseCase  *profileUC.ListProfilesUseCase
	updateProfileUseCase *profileUC.UpdateProfileUseCase
	deleteProfileUseCase *profileUC.DeleteProfileUseCase
	logger               logger.Logger
}

func NewProfileHandler(
	createUC *profileUC.CreateProfileUseCase,
	getUC *profileUC.GetProfileUseCase,
	listUC *profileUC.ListProfilesUseCase,
	updateUC *profileUC.UpdateProfileUseCase,
	deleteUC *profileUC.DeleteProfileUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		createProfileUseCase: createUC,
		getProfileUseCase:    getUC,
		listProfilesUseCase:  listUC,
		updateProfileUseCase: updateUC,
		deleteProfileUseCase: deleteUC,
		logger:               log,
	}
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	output, err := h.listProfilesUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProfileDTO, len(output.Aggregates))
	for i, agg := range output.Aggregates {
		dtos[i] = ToProfileDTO(agg)
	}
	c.JSON(http.StatusOK, ProfileListResponse{Profiles: dtos, Count: len(dtos)})
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Invalid request body", err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		c.Error(apperror.NewInvalidInput(errs[0], nil))
		return
	}

	var userID *uuid.UUID
	if id, ok := GetUserIDFromGinContext(c); ok {
		userID = &id
	}

	output, err := h.createProfileUseCase.Execute(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProfileDTO(output.Aggregate))
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("Profile", c.Param("id")))
		return
	}

	output, err := h.getProfileUseCase.ExecuteByID(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Aggregate))
}

// GetMyProfile resolves the profile owned by the authenticated account.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	output, err := h.getProfileUseCase.ExecuteByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Aggregate))
}

// UpdateFirstProfile patches the earliest-created profile, for single-owner
// deployments that address the profile without an id.
func (h *ProfileHandler) UpdateFirstProfile(c *gin.Context) {
	h.update(c, nil)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("Profile", c.Param("id")))
		return
	}
	h.update(c, &profileID)
}

func (h *ProfileHandler) update(c *gin.Context, profileID *uuid.UUID) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Invalid request body", err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		c.Error(apperror.NewInvalidInput(errs[0], nil))
		return
	}

	output, err := h.updateProfileUseCase.Execute(c.Request.Context(), req.ToInput(profileID))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Aggregate))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("Profile", c.Param("id")))
		return
	}

	input := profileUC.DeleteProfileInput{ProfileID: profileID}
	if err := h.deleteProfileUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

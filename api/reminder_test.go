package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/binayakjoshi/furever-sub000/reminder"
	remindermocks "github.com/binayakjoshi/furever-sub000/reminder/mocks"
	"github.com/binayakjoshi/furever-sub000/schema"
	"github.com/binayakjoshi/furever-sub000/store"
	storemocks "github.com/binayakjoshi/furever-sub000/store/mocks"
)

func performUpcomingRequest(t *testing.T, mongoStore store.FureverStore, scheduler *reminder.Scheduler, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	server := NewServer(mongoStore, nil, scheduler, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", target, nil)
	server.setupRouter().ServeHTTP(w, req)

	return w
}

func decodeErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder) string {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp.Message
}

func TestUpcomingVaccinationsInvalidAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongoStore := storemocks.NewMockFureverStore(ctrl)

	w := performUpcomingRequest(t, mongoStore, nil, "/api/accounts/not-an-object-id/vaccinations/upcoming")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorMessageInvalidAccountID, decodeErrorEnvelope(t, w))
}

func TestUpcomingVaccinationsInvalidDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongoStore := storemocks.NewMockFureverStore(ctrl)
	accountID := primitive.NewObjectID()

	for _, days := range []string{"0", "-3", "soon"} {
		w := performUpcomingRequest(t, mongoStore, nil,
			fmt.Sprintf("/api/accounts/%s/vaccinations/upcoming?days=%s", accountID.Hex(), days))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errorMessageInvalidParameters, decodeErrorEnvelope(t, w))
	}
}

func TestUpcomingVaccinationsAccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := primitive.NewObjectID()

	mongoStore := storemocks.NewMockFureverStore(ctrl)
	mongoStore.EXPECT().GetAccount(accountID).Return(nil, store.ErrAccountNotFound)

	w := performUpcomingRequest(t, mongoStore, nil,
		fmt.Sprintf("/api/accounts/%s/vaccinations/upcoming", accountID.Hex()))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, store.ErrAccountNotFound.Error(), decodeErrorEnvelope(t, w))
}

func TestUpcomingVaccinationsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := primitive.NewObjectID()
	petID := primitive.NewObjectID()
	dueDate := time.Now().AddDate(0, 0, 2).UTC()

	mongoStore := storemocks.NewMockFureverStore(ctrl)
	mongoStore.EXPECT().GetAccount(accountID).Return(&schema.Account{
		ID:    accountID,
		Name:  "Asha",
		Email: "asha@example.com",
	}, nil)

	petStore := remindermocks.NewMockPetStore(ctrl)
	petStore.EXPECT().FindPetsByOwner(accountID).Return([]schema.Pet{
		{
			ID:    petID,
			Owner: accountID,
			Name:  "Rex",
			Vaccinations: []schema.Vaccination{
				{Name: "Rabies", NextVaccDate: dueDate},
			},
		},
	}, nil)

	scheduler := reminder.NewScheduler(petStore, remindermocks.NewMockMailer(ctrl), "0 8 * * *")

	w := performUpcomingRequest(t, mongoStore, scheduler,
		fmt.Sprintf("/api/accounts/%s/vaccinations/upcoming?days=7", accountID.Hex()))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                          `json:"success"`
		Data    []reminder.UpcomingVaccination `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, len(resp.Data))
	assert.Equal(t, petID.Hex(), resp.Data[0].PetID)
	assert.Equal(t, "Rex", resp.Data[0].PetName)
	assert.Equal(t, "Rabies", resp.Data[0].VaccinationName)
	assert.Equal(t, 2, resp.Data[0].DaysUntilDue)
}

func TestUpcomingVaccinationsStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := primitive.NewObjectID()

	mongoStore := storemocks.NewMockFureverStore(ctrl)
	mongoStore.EXPECT().GetAccount(accountID).Return(&schema.Account{ID: accountID}, nil)

	petStore := remindermocks.NewMockPetStore(ctrl)
	petStore.EXPECT().FindPetsByOwner(accountID).Return(nil, fmt.Errorf("connection reset"))

	scheduler := reminder.NewScheduler(petStore, remindermocks.NewMockMailer(ctrl), "0 8 * * *")

	w := performUpcomingRequest(t, mongoStore, scheduler,
		fmt.Sprintf("/api/accounts/%s/vaccinations/upcoming", accountID.Hex()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errorMessageInternalServer, decodeErrorEnvelope(t, w))
}

/*
 *     Copyright 2025 The Atlas Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mapstack/atlas/manager/job"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/service/mocks"
	"github.com/mapstack/atlas/manager/types"
)

var (
	mockVersionReqBody = `
		{
		   "name": "spring drop"
		}`
	mockCreateVersionRequest = types.CreateVersionRequest{
		Name: "spring drop",
	}
	mockVersionModel = &models.Version{
		BaseModel:     mockBaseModel,
		ProjectID:     2,
		VersionNumber: 3,
		Name:          "spring drop",
		Status:        models.VersionStatusDraft,
	}
)

func mockVersionRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	apiv1 := r.Group("/api/v1")
	p := apiv1.Group("/projects")
	p.POST(":id/versions", h.CreateVersion)
	p.GET(":id/versions", h.GetVersions)
	v := apiv1.Group("/versions")
	v.GET(":id", h.GetVersion)
	v.GET(":id/publish/validate", h.ValidateVersionPublish)
	return r
}

func TestHandlers_CreateVersion(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity caused by uri",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects/test/versions", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "unprocessable entity caused by body",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects/2/versions", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects/2/versions", strings.NewReader(mockVersionReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateVersion(gomock.Any(), gomock.Eq(uint(2)), gomock.Eq(mockCreateVersionRequest)).Return(mockVersionModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				version := models.Version{}
				err := json.Unmarshal(w.Body.Bytes(), &version)
				assert.NoError(err)
				assert.Equal(*mockVersionModel, version)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockVersionRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetVersion(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/versions/test", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/versions/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetVersion(gomock.Any(), gomock.Eq(uint(2))).Return(mockVersionModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				version := models.Version{}
				err := json.Unmarshal(w.Body.Bytes(), &version)
				assert.NoError(err)
				assert.Equal(*mockVersionModel, version)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockVersionRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetVersions(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/2/versions?page=-1", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/2/versions?status=draft", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetVersions(gomock.Any(), gomock.Eq(uint(2)), gomock.Eq(types.GetVersionsQuery{
					Status:  models.VersionStatusDraft,
					Page:    1,
					PerPage: 10,
				})).Return([]models.Version{*mockVersionModel}, int64(1), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				var versions []models.Version
				err := json.Unmarshal(w.Body.Bytes(), &versions)
				assert.NoError(err)
				assert.Equal([]models.Version{*mockVersionModel}, versions)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockVersionRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_ValidateVersionPublish(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/versions/test/publish/validate", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/versions/2/publish/validate", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ValidateVersionForPublish(gomock.Any(), gomock.Eq(uint(2))).Return(&job.PublishValidation{
					Valid:    true,
					Errors:   []string{},
					Warnings: []string{},
				}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				validation := job.PublishValidation{}
				err := json.Unmarshal(w.Body.Bytes(), &validation)
				assert.NoError(err)
				assert.True(validation.Valid)
				assert.Empty(validation.Errors)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockVersionRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

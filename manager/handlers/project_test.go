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
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/plugin/soft_delete"

	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/service/mocks"
	"github.com/mapstack/atlas/manager/types"
)

var (
	mockProjectReqBody = `
		{
		   "slug": "palm-hills",
		   "name": "Palm Hills",
		   "default_locale": "en",
		   "supported_locales": ["en", "ar"]
		}`
	mockCreateProjectRequest = types.CreateProjectRequest{
		Slug:             "palm-hills",
		Name:             "Palm Hills",
		DefaultLocale:    "en",
		SupportedLocales: []string{"en", "ar"},
	}
	mockUpdateProjectRequest = types.UpdateProjectRequest{
		Name:             "Palm Hills",
		DefaultLocale:    "en",
		SupportedLocales: []string{"en", "ar"},
	}
	mockBaseModel = models.BaseModel{
		ID:        2,
		CreatedAt: time.Date(2025, 6, 12, 18, 0, 21, 580470900, time.UTC),
		UpdatedAt: time.Date(2025, 6, 12, 18, 0, 21, 580470900, time.UTC),
		IsDel:     soft_delete.DeletedAt(soft_delete.FlagActived),
	}
	mockProjectModel = &models.Project{
		BaseModel:        mockBaseModel,
		Slug:             "palm-hills",
		Name:             "Palm Hills",
		IsActive:         true,
		DefaultLocale:    "en",
		SupportedLocales: models.Array{"en", "ar"},
	}
)

func mockProjectRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	apiv1 := r.Group("/api/v1")
	p := apiv1.Group("/projects")
	p.POST("", h.CreateProject)
	p.PATCH(":id", h.UpdateProject)
	p.GET(":id", h.GetProject)
	p.GET("", h.GetProjects)
	return r
}

func TestHandlers_CreateProject(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(mockProjectReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateProject(gomock.Any(), gomock.Eq(mockCreateProjectRequest)).Return(mockProjectModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				project := models.Project{}
				err := json.Unmarshal(w.Body.Bytes(), &project)
				assert.NoError(err)
				assert.Equal(*mockProjectModel, project)
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
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_UpdateProject(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity caused by uri",
			req:  httptest.NewRequest(http.MethodPatch, "/api/v1/projects/test", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "unprocessable entity caused by body",
			req:  httptest.NewRequest(http.MethodPatch, "/api/v1/projects/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPatch, "/api/v1/projects/2", strings.NewReader(mockProjectReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.UpdateProject(gomock.Any(), gomock.Eq(uint(2)), gomock.Eq(mockUpdateProjectRequest)).Return(mockProjectModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				project := models.Project{}
				err := json.Unmarshal(w.Body.Bytes(), &project)
				assert.NoError(err)
				assert.Equal(*mockProjectModel, project)
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
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetProject(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/test", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetProject(gomock.Any(), gomock.Eq(uint(2))).Return(mockProjectModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				project := models.Project{}
				err := json.Unmarshal(w.Body.Bytes(), &project)
				assert.NoError(err)
				assert.Equal(*mockProjectModel, project)
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
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetProjects(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects?page=-1", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetProjects(gomock.Any(), gomock.Eq(types.GetProjectsQuery{
					Page:    1,
					PerPage: 10,
				})).Return([]models.Project{*mockProjectModel}, int64(1), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				var projects []models.Project
				err := json.Unmarshal(w.Body.Bytes(), &projects)
				assert.NoError(err)
				assert.Equal([]models.Project{*mockProjectModel}, projects)
				assert.NotEmpty(w.Header().Get("Link"))
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
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

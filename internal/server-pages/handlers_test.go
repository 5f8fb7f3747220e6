package serverpages_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/resolver"
	serverpages "github.com/DanishKodeMonkey/webserver-node-experiment/internal/server-pages"
	serverpagesmocks "github.com/DanishKodeMonkey/webserver-node-experiment/internal/server-pages/mocks"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/testingh"
)

type HandlersSuite struct {
	testingh.ContextSuite

	ctrl     *gomock.Controller
	resolver *serverpagesmocks.MockpageResolver
	logs     *observer.ObservedLogs
	handlers serverpages.Handlers
	e        *echo.Echo
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.resolver = serverpagesmocks.NewMockpageResolver(s.ctrl)
	{
		var core zapcore.Core
		core, s.logs = observer.New(zapcore.DebugLevel)

		var err error
		s.handlers, err = serverpages.NewHandlers(serverpages.NewOptions(zap.New(core), s.resolver))
		s.Require().NoError(err)
	}
	s.e = echo.New()
	s.handlers.Register(s.e)

	s.ContextSuite.SetupTest()
}

func (s *HandlersSuite) TearDownTest() {
	s.ctrl.Finish()

	s.ContextSuite.TearDownTest()
}

func (s *HandlersSuite) TestNewHandlers_InvalidOptions() {
	_, err := serverpages.NewHandlers(serverpages.NewOptions(zap.NewNop(), nil))
	s.Require().Error(err)

	_, err = serverpages.NewHandlers(serverpages.NewOptions(nil, s.resolver))
	s.Require().Error(err)
}

func (s *HandlersSuite) TestGetPage_WritesResolvedResponse() {
	// Arrange.
	s.resolver.EXPECT().Resolve("/about").Return(resolver.Response{
		Status:      http.StatusOK,
		ContentType: resolver.ContentType,
		Body:        []byte(testingh.AboutHTML),
	})

	// Action.
	resp := s.do(http.MethodGet, "/about")

	// Assert.
	s.Equal(http.StatusOK, resp.Code)
	s.Equal(resolver.ContentType, resp.Header().Get(echo.HeaderContentType))
	s.Equal(testingh.AboutHTML, resp.Body.String())
}

func (s *HandlersSuite) TestGetPage_PassesRawRequestURI() {
	for _, target := range []string{"/", "/About", "/about/", "/about?lang=da", "/contact%2Dme"} {
		s.Run(target, func() {
			s.resolver.EXPECT().Resolve(target).Return(resolver.Response{
				Status:      http.StatusNotFound,
				ContentType: resolver.ContentType,
				Body:        []byte(resolver.FallbackBody),
			})

			resp := s.do(http.MethodGet, target)
			s.Equal(http.StatusNotFound, resp.Code)
		})
	}
}

func (s *HandlersSuite) TestGetPage_Teapot() {
	s.resolver.EXPECT().Resolve("/418").Return(resolver.Response{
		Status:      http.StatusTeapot,
		ContentType: resolver.ContentType,
		Body:        []byte(testingh.TeapotHTML),
	})

	resp := s.do(http.MethodGet, "/418")
	s.Equal(http.StatusTeapot, resp.Code)
	s.Equal(testingh.TeapotHTML, resp.Body.String())
}

func (s *HandlersSuite) TestGetPage_LogsResolvedStatus() {
	s.resolver.EXPECT().Resolve("/nowhere").Return(resolver.Response{
		Status:      http.StatusNotFound,
		ContentType: resolver.ContentType,
		Body:        []byte(testingh.NotFoundHTML),
	})

	s.do(http.MethodGet, "/nowhere")

	entries := s.logs.FilterMessage("page resolved").AllUntimed()
	s.Require().Len(entries, 1)
	s.Equal(zapcore.DebugLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	s.Equal("/nowhere", fields["path"])
	s.EqualValues(http.StatusNotFound, fields["status"])
	s.EqualValues(len(testingh.NotFoundHTML), fields["size"])
}

func (s *HandlersSuite) TestHeadPage() {
	s.resolver.EXPECT().Resolve("/").Return(resolver.Response{
		Status:      http.StatusOK,
		ContentType: resolver.ContentType,
		Body:        []byte(testingh.IndexHTML),
	})

	resp := s.do(http.MethodHead, "/")
	s.Equal(http.StatusOK, resp.Code)
}

func (s *HandlersSuite) TestOtherMethods_NotResolved() {
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		s.Run(m, func() {
			resp := s.do(m, "/about")
			s.Equal(http.StatusMethodNotAllowed, resp.Code)
		})
	}
}

func (s *HandlersSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil).WithContext(s.Ctx)
	resp := httptest.NewRecorder()
	s.e.ServeHTTP(resp, req)
	return resp
}

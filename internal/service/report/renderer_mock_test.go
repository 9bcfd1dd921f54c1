package report

import (
	"sync"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

var _ renderer = &rendererMock{}

type rendererMock struct {
	ContentTypeFunc func() string
	RenderFunc      func(report *domain.Report) ([]byte, error)

	calls struct {
		ContentType []struct{}
		Render []struct {
			Report *domain.Report
		}
	}
	lockContentType sync.RWMutex
	lockRender      sync.RWMutex
}

func (mock *rendererMock) ContentType() string {
	if mock.ContentTypeFunc == nil {
		panic("rendererMock.ContentTypeFunc: method is nil but renderer.ContentType was just called")
	}
	callInfo := struct{}{}
	mock.lockContentType.Lock()
	mock.calls.ContentType = append(mock.calls.ContentType, callInfo)
	mock.lockContentType.Unlock()
	return mock.ContentTypeFunc()
}

func (mock *rendererMock) ContentTypeCalls() []struct{} {
	var calls []struct{}
	mock.lockContentType.RLock()
	calls = mock.calls.ContentType
	mock.lockContentType.RUnlock()
	return calls
}

func (mock *rendererMock) Render(report *domain.Report) ([]byte, error) {
	if mock.RenderFunc == nil {
		panic("rendererMock.RenderFunc: method is nil but renderer.Render was just called")
	}
	callInfo := struct {
		Report *domain.Report
	}{
		Report: report,
	}
	mock.lockRender.Lock()
	mock.calls.Render = append(mock.calls.Render, callInfo)
	mock.lockRender.Unlock()
	return mock.RenderFunc(report)
}

func (mock *rendererMock) RenderCalls() []struct {
	Report *domain.Report
} {
	var calls []struct {
		Report *domain.Report
	}
	mock.lockRender.RLock()
	calls = mock.calls.Render
	mock.lockRender.RUnlock()
	return calls
}

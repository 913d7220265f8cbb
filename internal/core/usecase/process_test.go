package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

type statusCall struct {
	status domain.AnalysisStatus
	errMsg string
}

type processRepoFake struct {
	rec         *domain.AnalysisRecord
	getErr      error
	saveErr     error
	statusCalls []statusCall
	savedID     string
	savedResult *domain.AnalysisResult
}

func (f *processRepoFake) Create(context.Context, *domain.AnalysisRecord) error { return nil }

func (f *processRepoFake) GetByID(context.Context, string) (*domain.AnalysisRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copyRec := *f.rec
	return &copyRec, nil
}

func (f *processRepoFake) UpdateStatus(_ context.Context, _ string, status domain.AnalysisStatus, errMessage string) error {
	f.statusCalls = append(f.statusCalls, statusCall{status: status, errMsg: errMessage})
	return nil
}

func (f *processRepoFake) SaveResult(_ context.Context, id string, result *domain.AnalysisResult) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedID = id
	f.savedResult = result
	return nil
}

func (f *processRepoFake) ListCompleted(context.Context, int) ([]*domain.AnalysisRecord, error) {
	return nil, errors.New("not implemented")
}

type processStorageFake struct {
	content string
	err     error
}

func (f *processStorageFake) Save(context.Context, string, io.Reader) error {
	return errors.New("not implemented")
}

func (f *processStorageFake) Open(context.Context, string) (io.ReadCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.content)), nil
}

type analyzerFake struct {
	result *domain.AnalysisResult
	err    error
	upload domain.RawUpload
}

func (f *analyzerFake) Analyze(_ context.Context, upload domain.RawUpload) (*domain.AnalysisResult, error) {
	f.upload = upload
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func processRecord() *domain.AnalysisRecord {
	return &domain.AnalysisRecord{
		ID:          "an-1",
		Filename:    "fir.jpg",
		MimeType:    "image/jpeg",
		StoragePath: "an-1_fir.jpg",
		Status:      domain.StatusUploaded,
	}
}

func TestProcessByIDSuccess(t *testing.T) {
	repo := &processRepoFake{rec: processRecord()}
	analyzer := &analyzerFake{result: &domain.AnalysisResult{DocumentType: domain.TypeFIR}}
	uc := NewProcessAnalysisUseCase(repo, &processStorageFake{content: "img-bytes"}, analyzer)

	if err := uc.ProcessByID(context.Background(), "an-1"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}
	if len(repo.statusCalls) != 2 {
		t.Fatalf("expected 2 status calls, got %d", len(repo.statusCalls))
	}
	if repo.statusCalls[0].status != domain.StatusProcessing || repo.statusCalls[1].status != domain.StatusCompleted {
		t.Fatalf("unexpected status sequence: %+v", repo.statusCalls)
	}
	if repo.savedID != "an-1" || repo.savedResult == nil {
		t.Fatalf("expected result saved for an-1, got id=%s result=%v", repo.savedID, repo.savedResult)
	}
	if string(analyzer.upload.Content) != "img-bytes" || analyzer.upload.Filename != "fir.jpg" {
		t.Fatalf("analyzer received unexpected upload: %+v", analyzer.upload)
	}
}

func TestProcessByIDStoresUserMessageOnPipelineFailure(t *testing.T) {
	repo := &processRepoFake{rec: processRecord()}
	analyzer := &analyzerFake{
		err: domain.WrapError(domain.ErrOCRFailure, "recognize text", errors.New("providers down")),
	}
	uc := NewProcessAnalysisUseCase(repo, &processStorageFake{content: "img"}, analyzer)

	err := uc.ProcessByID(context.Background(), "an-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.statusCalls) != 2 || repo.statusCalls[1].status != domain.StatusFailed {
		t.Fatalf("expected final failed status, got %+v", repo.statusCalls)
	}
	if repo.statusCalls[1].errMsg != domain.UserMessage(analyzer.err) {
		t.Fatalf("stored error = %q, want user-facing message", repo.statusCalls[1].errMsg)
	}
}

func TestProcessByIDMarksFailedOnStorageError(t *testing.T) {
	repo := &processRepoFake{rec: processRecord()}
	uc := NewProcessAnalysisUseCase(repo, &processStorageFake{err: errors.New("missing file")}, &analyzerFake{})

	err := uc.ProcessByID(context.Background(), "an-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.statusCalls) != 2 || repo.statusCalls[1].status != domain.StatusFailed {
		t.Fatalf("expected final failed status, got %+v", repo.statusCalls)
	}
}

func TestProcessByIDMarksFailedOnSaveError(t *testing.T) {
	repo := &processRepoFake{rec: processRecord(), saveErr: errors.New("db down")}
	analyzer := &analyzerFake{result: &domain.AnalysisResult{DocumentType: domain.TypeGeneral}}
	uc := NewProcessAnalysisUseCase(repo, &processStorageFake{content: "img"}, analyzer)

	err := uc.ProcessByID(context.Background(), "an-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if repo.statusCalls[len(repo.statusCalls)-1].status != domain.StatusFailed {
		t.Fatalf("expected final failed status, got %+v", repo.statusCalls)
	}
}

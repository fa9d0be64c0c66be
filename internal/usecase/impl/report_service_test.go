package impl

import (
	"context"
	"testing"
	"time"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/service"
	mockRepo "visitadoras/internal/mocks/repository"
	mockSvc "visitadoras/internal/mocks/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service     *reportService
	visitRepo   *mockRepo.MockVisitRepository
	monthlyRepo *mockRepo.MockMonthlyCommissionRepository
	profileRepo *mockRepo.MockProfileRepository
	workbooks   *mockSvc.MockWorkbookRenderer
	pdfs        *mockSvc.MockPDFRenderer
	storage     *mockSvc.MockSignatureStorage
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	fx := reportServiceFixtures{
		visitRepo:   mockRepo.NewMockVisitRepository(t),
		monthlyRepo: mockRepo.NewMockMonthlyCommissionRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		workbooks:   mockSvc.NewMockWorkbookRenderer(t),
		pdfs:        mockSvc.NewMockPDFRenderer(t),
		storage:     mockSvc.NewMockSignatureStorage(t),
	}

	fx.service = NewReportService(ReportServiceParams{
		VisitRepo:   fx.visitRepo,
		MonthlyRepo: fx.monthlyRepo,
		ProfileRepo: fx.profileRepo,
		Workbooks:   fx.workbooks,
		PDFs:        fx.pdfs,
		Storage:     fx.storage,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	}).(*reportService)
	fx.service.now = func() time.Time { return time.Date(2024, time.March, 5, 16, 0, 0, 0, time.UTC) }

	return fx
}

func TestReportService_FullReport_VisitadoraIsAlwaysTheSubject(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	me := usecase.Requester{ProfileID: uuid.New(), Role: entity.RoleVisitadora}
	other := uuid.New()
	visits := []*entity.Visit{{ID: uuid.New(), VisitadoraID: me.ProfileID}}
	commissions := []*entity.MonthlyCommission{
		{Amounts: entity.CategoryAmounts{USG: decimal.NewFromInt(10)}, Status: entity.CommissionPending},
	}

	fx.profileRepo.EXPECT().FindByID(ctx, me.ProfileID).Return(&entity.Profile{ID: me.ProfileID, Name: "Ana López"}, nil)
	fx.visitRepo.EXPECT().List(ctx, entity.VisitFilter{VisitadoraID: &me.ProfileID}).Return(visits, nil)
	fx.monthlyRepo.EXPECT().List(ctx, entity.MonthlyCommissionFilter{}).Return(commissions, nil)
	fx.workbooks.EXPECT().
		RenderFullReport(mock.MatchedBy(func(report *service.FullReport) bool {
			return report.SubjectName == "Ana López" &&
				len(report.Visits) == 1 &&
				report.Summary.CountPending == 1
		})).
		Return([]byte("xlsx"), nil)

	file, err := fx.service.FullReport(ctx, me, &usecase.FullReportInput{VisitadoraID: &other})

	require.NoError(t, err)
	assert.Equal(t, "Reporte_Ana_López_05-03-2024.xlsx", file.FileName)
	assert.Equal(t, usecase.ContentTypeXLSX, file.ContentType)
}

func TestReportService_FullReport_AdminWithoutSubject(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	admin := usecase.Requester{ProfileID: uuid.New(), Role: entity.RoleAdmin}

	fx.visitRepo.EXPECT().List(ctx, entity.VisitFilter{}).Return(nil, nil)
	fx.monthlyRepo.EXPECT().List(ctx, entity.MonthlyCommissionFilter{}).Return(nil, nil)
	fx.pdfs.EXPECT().
		RenderFullReport(ctx, mock.MatchedBy(func(report *service.FullReport) bool { return report.SubjectName == "" }), fx.storage).
		Return([]byte("%PDF"), nil)

	file, err := fx.service.FullReport(ctx, admin, &usecase.FullReportInput{Format: usecase.ReportFormatPDF})

	require.NoError(t, err)
	assert.Equal(t, "Reporte_05-03-2024.pdf", file.FileName)
	assert.Equal(t, usecase.ContentTypePDF, file.ContentType)
}

func TestReportService_FullReport_UnsupportedFormat(t *testing.T) {
	fx := createTestReportService(t)

	_, err := fx.service.FullReport(context.Background(), usecase.Requester{Role: entity.RoleAdmin}, &usecase.FullReportInput{Format: "csv"})

	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedFormat))
}

func TestReportService_FullReport_RenderFailureAbortsExport(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	fx.visitRepo.EXPECT().List(ctx, mock.Anything).Return(nil, nil)
	fx.monthlyRepo.EXPECT().List(ctx, mock.Anything).Return(nil, nil)
	fx.pdfs.EXPECT().RenderFullReport(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("signature fetch failed"))

	file, err := fx.service.FullReport(ctx, usecase.Requester{Role: entity.RoleAdmin}, &usecase.FullReportInput{Format: usecase.ReportFormatPDF})

	assert.Nil(t, file)
	assert.True(t, errors.Is(err, domainerrors.ErrReportFailed))
}

func TestReportService_CommissionReport(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	payer := &entity.Profile{ID: uuid.New(), Name: "Lucía"}
	rows := []*entity.MonthlyCommission{
		{ID: uuid.New(), Amounts: entity.CategoryAmounts{USG: decimal.NewFromInt(20)}, Status: entity.CommissionPaid, PaidBy: &payer.ID},
		{ID: uuid.New(), Amounts: entity.CategoryAmounts{EKG: decimal.NewFromInt(5)}, Status: entity.CommissionPending},
	}
	filter := entity.MonthlyCommissionFilter{Period: &entity.Period{Month: 2, Year: 2024}}

	fx.monthlyRepo.EXPECT().List(ctx, filter).Return(rows, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, payer.ID).Return(payer, nil)
	fx.workbooks.EXPECT().
		RenderCommissionReport(mock.MatchedBy(func(report *service.CommissionReport) bool {
			return len(report.Rows) == 2 &&
				report.Rows[0].PayerName == "Lucía" &&
				report.Summary.TotalPaid.Equal(decimal.NewFromInt(20))
		})).
		Return([]byte("xlsx"), nil)

	file, err := fx.service.CommissionReport(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, "Reporte_Comisiones_05-03-2024.xlsx", file.FileName)
}

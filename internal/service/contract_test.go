package service_test

import (
	"context"
	"testing"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/mocks"
	"kubera-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TagContractTestSuite covers TagService and ContractService, which share the link table
type TagContractTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTags      *mocks.MockTagRepositoryInterface
	mockContracts *mocks.MockContractRepositoryInterface
	mockLinks     *mocks.MockTagContractRepositoryInterface
	mockAudit     *mocks.MockAuditLogRepositoryInterface
	tagSvc        *service.TagService
	contractSvc   *service.ContractService
}

func (suite *TagContractTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTags = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.mockContracts = mocks.NewMockContractRepositoryInterface(suite.ctrl)
	suite.mockLinks = mocks.NewMockTagContractRepositoryInterface(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	runner := &fakeRunner{}
	audit := service.NewAuditService(runner, suite.mockAudit).WithClock(fixedClock)
	v := validator.New()
	suite.tagSvc = service.NewTagService(runner, suite.mockTags, suite.mockLinks, audit, v).WithClock(fixedClock)
	suite.contractSvc = service.NewContractService(runner, suite.mockContracts, suite.mockTags, suite.mockLinks, audit, v).
		WithClock(fixedClock)
}

func (suite *TagContractTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TagContractTestSuite) TestCreateTagDuplicateName() {
	bc := callerContext(1, models.RoleEditor, false)
	suite.mockTags.EXPECT().GetByName(gomock.Any(), "urgent").Return(&models.Tag{ID: 4, Name: "urgent"}, nil)

	_, err := suite.tagSvc.Create(context.Background(), bc, &service.CreateTagRequest{Name: " urgent "})

	suite.ErrorIs(err, apperrors.ErrTagExists)
}

func (suite *TagContractTestSuite) TestCreateTag() {
	bc := callerContext(1, models.RoleEditor, false)
	suite.mockTags.EXPECT().GetByName(gomock.Any(), "urgent").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTags.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, tag *models.Tag) error {
			tag.ID = 4
			return nil
		})
	suite.mockAudit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	tag, err := suite.tagSvc.Create(context.Background(), bc, &service.CreateTagRequest{Name: "urgent"})

	suite.Require().NoError(err)
	suite.Equal(int64(4), tag.ID)
	suite.Equal(fixedNow, tag.CreatedAt)
	suite.Equal(bc.User.Email, *tag.CreatedBy)
}

func (suite *TagContractTestSuite) TestDeleteTagCascadesLinks() {
	bc := callerContext(1, models.RoleEditor, false)
	suite.mockTags.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&models.Tag{ID: 4, Name: "urgent"}, nil)
	gomock.InOrder(
		suite.mockLinks.EXPECT().DeleteByTag(gomock.Any(), int64(4)).Return(int64(2), nil),
		suite.mockTags.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil),
	)
	suite.mockAudit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	suite.NoError(suite.tagSvc.Delete(context.Background(), bc, 4))
}

func (suite *TagContractTestSuite) TestCreateContractValidatesDates() {
	bc := callerContext(1, models.RoleEditor, false)
	end := "2024-01-01"

	_, err := suite.contractSvc.Create(context.Background(), bc, &service.CreateContractRequest{
		Title:             "Hosting",
		ServiceProviderID: 3,
		StartDate:         "2024-06-01",
		EndDate:           &end,
	})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.contractSvc.Create(context.Background(), bc, &service.CreateContractRequest{
		Title:             "Hosting",
		ServiceProviderID: 3,
		StartDate:         "01/06/2024",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *TagContractTestSuite) TestGetContractComposesTags() {
	bc := callerContext(1, models.RoleMember, false)
	suite.mockContracts.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.Contract{ID: 8, Title: "Hosting"}, nil)
	suite.mockLinks.EXPECT().TagIDsByContract(gomock.Any(), []int64{8}).Return(map[int64][]int64{8: {4, 5}}, nil)
	suite.mockTags.EXPECT().GetByIDs(gomock.Any(), []int64{4, 5}).
		Return([]models.Tag{{ID: 4, Name: "urgent"}, {ID: 5, Name: "legal"}}, nil)

	resp, err := suite.contractSvc.Get(context.Background(), bc, 8)

	suite.Require().NoError(err)
	suite.Equal("Hosting", resp.Title)
	suite.Len(resp.Tags, 2)
	suite.Equal("urgent", resp.Tags[0].Name)
}

func (suite *TagContractTestSuite) TestListContractsWithoutTags() {
	bc := callerContext(1, models.RoleMember, false)
	suite.mockContracts.EXPECT().List(gomock.Any(), 100, 0).
		Return([]models.Contract{{ID: 8}, {ID: 7}}, int64(2), nil)
	suite.mockLinks.EXPECT().TagIDsByContract(gomock.Any(), []int64{8, 7}).Return(map[int64][]int64{}, nil)
	suite.mockTags.EXPECT().GetByIDs(gomock.Any(), gomock.Nil()).Return(nil, nil)

	resp, err := suite.contractSvc.List(context.Background(), bc, 0, 0)

	suite.Require().NoError(err)
	suite.Len(resp.Contracts, 2)
	suite.NotNil(resp.Contracts[0].Tags)
	suite.Empty(resp.Contracts[0].Tags)
}

func (suite *TagContractTestSuite) TestLinkTag() {
	bc := callerContext(1, models.RoleEditor, false)
	suite.mockContracts.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.Contract{ID: 8}, nil).Times(2)
	suite.mockTags.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&models.Tag{ID: 4}, nil).Times(2)

	suite.mockLinks.EXPECT().Exists(gomock.Any(), int64(4), int64(8)).Return(true, nil)
	err := suite.contractSvc.LinkTag(context.Background(), bc, 8, 4)
	suite.ErrorIs(err, apperrors.ErrTagContractLinkExists)

	suite.mockLinks.EXPECT().Exists(gomock.Any(), int64(4), int64(8)).Return(false, nil)
	suite.mockLinks.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, link *models.TagContract) error {
			suite.Equal(int64(4), link.TagID)
			suite.Equal(int64(8), link.ContractID)
			return nil
		})
	suite.mockAudit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.NoError(suite.contractSvc.LinkTag(context.Background(), bc, 8, 4))
}

func (suite *TagContractTestSuite) TestLinkTagMissingTag() {
	bc := callerContext(1, models.RoleEditor, false)
	suite.mockContracts.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.Contract{ID: 8}, nil)
	suite.mockTags.EXPECT().GetByID(gomock.Any(), int64(40)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.contractSvc.LinkTag(context.Background(), bc, 8, 40)

	suite.ErrorIs(err, apperrors.ErrTagNotFound)
}

func (suite *TagContractTestSuite) TestUnlinkMissingLink() {
	bc := callerContext(1, models.RoleEditor, false)
	suite.mockLinks.EXPECT().Delete(gomock.Any(), int64(4), int64(8)).Return(false, nil)

	err := suite.contractSvc.UnlinkTag(context.Background(), bc, 8, 4)

	suite.ErrorIs(err, apperrors.ErrTagLinkNotFound)
}

func (suite *TagContractTestSuite) TestDeleteContractCascadesLinks() {
	bc := callerContext(1, models.RoleEditor, false)
	suite.mockContracts.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.Contract{ID: 8}, nil)
	gomock.InOrder(
		suite.mockLinks.EXPECT().DeleteByContract(gomock.Any(), int64(8)).Return(int64(1), nil),
		suite.mockContracts.EXPECT().Delete(gomock.Any(), int64(8)).Return(nil),
	)
	suite.mockAudit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	suite.NoError(suite.contractSvc.Delete(context.Background(), bc, 8))
}

func TestTagContractTestSuite(t *testing.T) {
	suite.Run(t, new(TagContractTestSuite))
}

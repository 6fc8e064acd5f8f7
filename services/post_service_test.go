package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	genmocks "github.com/blogem/linkedin-agent/generator/mocks"
	"github.com/blogem/linkedin-agent/models"
	pubmocks "github.com/blogem/linkedin-agent/publisher/mocks"
	"github.com/blogem/linkedin-agent/repositories/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// PostServiceTestSuite is a test suite for CreatePost
type PostServiceTestSuite struct {
	suite.Suite
	users     *mocks.MockUserRepository
	generator *genmocks.MockGenerator
	publisher *pubmocks.MockPublisher
	service   PostService
}

func (suite *PostServiceTestSuite) SetupTest() {
	suite.users = mocks.NewMockUserRepository(suite.T())
	suite.generator = genmocks.NewMockGenerator(suite.T())
	suite.publisher = pubmocks.NewMockPublisher(suite.T())
	suite.service = NewPostService(suite.users, suite.generator, suite.publisher, discardLogger())
}

func (suite *PostServiceTestSuite) storedUser() *models.UserIdentity {
	return &models.UserIdentity{ID: 7, ExternalID: "sub-7", DisplayName: "Grace Hopper", AccessToken: "member-token"}
}

func (suite *PostServiceTestSuite) TestCreatePost_Success() {
	suite.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(suite.storedUser(), nil).Once()
	suite.generator.EXPECT().Generate(mock.Anything, "announce our launch", Persona("Grace Hopper")).
		Return("We launched! #launch #startup #ai", nil).Once()
	suite.publisher.EXPECT().Publish(mock.Anything, "member-token", "urn:li:person:sub-7", "We launched! #launch #startup #ai").
		Return("urn:li:share:99", nil).Once()

	post, err := suite.service.CreatePost(context.Background(), &models.PostForm{UserID: 7, Prompt: "announce our launch"})

	suite.Require().NoError(err)
	suite.Equal("urn:li:share:99", post.ID)
	suite.Equal("We launched! #launch #startup #ai", post.Text)
}

func (suite *PostServiceTestSuite) TestCreatePost_MissingToken() {
	user := suite.storedUser()
	user.AccessToken = ""
	suite.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil).Once()

	_, err := suite.service.CreatePost(context.Background(), &models.PostForm{UserID: 7, Prompt: "announce our launch"})

	suite.ErrorIs(err, models.ErrMissingToken)
	suite.generator.AssertNotCalled(suite.T(), "Generate", mock.Anything, mock.Anything, mock.Anything)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostServiceTestSuite) TestCreatePost_UserNotFound() {
	suite.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(nil, models.ErrUserNotFound).Once()

	_, err := suite.service.CreatePost(context.Background(), &models.PostForm{UserID: 42, Prompt: "hello"})

	suite.ErrorIs(err, models.ErrUserNotFound)
}

func (suite *PostServiceTestSuite) TestCreatePost_InvalidForm() {
	_, err := suite.service.CreatePost(context.Background(), &models.PostForm{UserID: 0, Prompt: "  "})

	var verrs models.ValidationErrors
	suite.Require().True(errors.As(err, &verrs))
	suite.Len(verrs, 2)
}

func (suite *PostServiceTestSuite) TestCreatePost_GenerationFails() {
	suite.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(suite.storedUser(), nil).Once()
	suite.generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
		Return("", models.Upstream(models.ErrGeneration, 529, "overloaded")).Once()

	_, err := suite.service.CreatePost(context.Background(), &models.PostForm{UserID: 7, Prompt: "hello"})

	suite.ErrorIs(err, models.ErrGeneration)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostServiceTestSuite) TestCreatePost_PublishFails() {
	suite.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(suite.storedUser(), nil).Once()
	suite.generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return("text", nil).Once()
	suite.publisher.EXPECT().Publish(mock.Anything, "member-token", "urn:li:person:sub-7", "text").
		Return("", models.Upstream(models.ErrPublish, 422, `{"message":"duplicate"}`)).Once()

	_, err := suite.service.CreatePost(context.Background(), &models.PostForm{UserID: 7, Prompt: "hello"})

	suite.ErrorIs(err, models.ErrPublish)
	var upstream *models.UpstreamError
	suite.Require().True(errors.As(err, &upstream))
	suite.Equal(422, upstream.Status)
	suite.Equal(`{"message":"duplicate"}`, upstream.Body)
}

func (suite *PostServiceTestSuite) TestPersona() {
	suite.Contains(Persona("Grace Hopper"), "Grace Hopper")
	suite.Contains(Persona(""), "a LinkedIn member")
}

// TestPostServiceTestSuite runs the post service test suite
func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}

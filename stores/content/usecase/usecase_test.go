package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	mDomain "github.com/arbifans/goapp/domain/mocks"
	"golang.org/x/xerrors"
)

var (
	mockCtx = ctx.Background()
)

type usecaseSuite struct {
	suite.Suite

	httpReader    *mDomain.WebResourceReaderRepository
	ipfsReader    *mDomain.WebResourceReaderRepository
	dataUriReader *mDomain.WebResourceReaderRepository
	im            domain.WebResourceUseCase
}

func TestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(usecaseSuite))
}

func (s *usecaseSuite) SetupTest() {
	s.httpReader = &mDomain.WebResourceReaderRepository{}
	s.ipfsReader = &mDomain.WebResourceReaderRepository{}
	s.dataUriReader = &mDomain.WebResourceReaderRepository{}
	s.im = NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:    s.httpReader,
		IpfsReader:    s.ipfsReader,
		DataUriReader: s.dataUriReader,
	})
}

func (s *usecaseSuite) TestGetHttp() {
	url := "https://cdn.example.com/asset.png"
	pngHeader := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	s.httpReader.On("Get", mockCtx, url).Return(pngHeader, nil).Once()

	data, contentType, err := s.im.Get(mockCtx, url)
	s.NoError(err)
	s.Equal(pngHeader, data)
	s.Equal("image/png", contentType)
}

func (s *usecaseSuite) TestGetIpfsStripsSchema() {
	s.ipfsReader.On("Get", mockCtx, "QmHash/1.json").Return([]byte(`{}`), nil).Once()

	_, contentType, err := s.im.Get(mockCtx, "ipfs://QmHash/1.json")
	s.NoError(err)
	s.Contains(contentType, "json")
	s.ipfsReader.AssertExpectations(s.T())
}

func (s *usecaseSuite) TestGetDataUri() {
	uri := "data:text/plain,hello"
	s.dataUriReader.On("Get", mockCtx, uri).Return([]byte("hello"), nil).Once()

	data, _, err := s.im.Get(mockCtx, uri)
	s.NoError(err)
	s.Equal([]byte("hello"), data)
}

func (s *usecaseSuite) TestGetUnsupportedSchema() {
	_, _, err := s.im.Get(mockCtx, "ftp://example.com/asset")
	s.ErrorIs(err, domain.ErrUnsupportedSchema)
}

func (s *usecaseSuite) TestGetFallsBackToIpfs() {
	url := "https://gateway.pinata.cloud/ipfs/QmHash"
	s.httpReader.On("Get", mockCtx, url).Return(nil, xerrors.Errorf("gateway down")).Once()
	s.ipfsReader.On("Get", mockCtx, "QmHash").Return([]byte("content"), nil).Once()

	data, _, err := s.im.Get(mockCtx, url)
	s.NoError(err)
	s.Equal([]byte("content"), data)
	s.ipfsReader.AssertExpectations(s.T())
}

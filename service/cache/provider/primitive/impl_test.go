package primitive

import (
	"testing"
	"time"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r, e := ts.im.cache.Get([]byte(k))
	ts.NoError(e)
	ts.Equal(v, r)

	time.Sleep(1100 * time.Millisecond)
	_, e = ts.im.cache.Get([]byte(k))
	ts.Equal(freecache.ErrNotFound, e)
}

func (ts *testsuite) TestSubSecondTtlExpires() {
	ts.Equal(1, seconds(10*time.Millisecond))
	ts.Equal(0, seconds(0))
	ts.Equal(2, seconds(1500*time.Millisecond))

	ts.NoError(ts.im.Set(mockCtx, "short", []byte("v"), 10*time.Millisecond))
	_, ttl, err := ts.im.Get(mockCtx, "short")
	ts.NoError(err)
	ts.True(ttl > 0)
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		Desc string
		Key  string
		Val  string
		Err  error
	}{
		{
			Desc: "Success",
			Key:  "key",
			Val:  "value",
			Err:  nil,
		},
		{
			Desc: "Not found",
			Key:  "",
			Err:  provider.ErrNotFound,
		},
	}

	for _, c := range cases {
		if len(c.Key) > 0 {
			ts.NoError(ts.im.cache.Set([]byte(c.Key), []byte(c.Val), 10), c.Desc)
		}

		v, _, e := ts.im.Get(mockCtx, c.Key)
		ts.Equal(c.Val, string(v), c.Desc)
		ts.Equal(c.Err, e, c.Desc)
	}
}

func (ts *testsuite) TestSetTtl() {
	ts.NoError(ts.im.Set(mockCtx, "short", []byte("v"), 1500*time.Millisecond))
	_, ttl, err := ts.im.Get(mockCtx, "short")
	ts.NoError(err)
	ts.True(ttl > 0 && ttl <= 2*time.Second)

	ts.NoError(ts.im.Set(mockCtx, "forever", []byte("v"), 0))
	_, ttl, err = ts.im.Get(mockCtx, "forever")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)

	ts.NoError(ts.im.Del(mockCtx, "forever"))
	_, _, err = ts.im.Get(mockCtx, "forever")
	ts.Equal(provider.ErrNotFound, err)
}

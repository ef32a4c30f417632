package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "requestId", "abc")
	ts.Equal("abc", Value(ctx, "requestId"))
	ts.Nil(Value(bg, "requestId"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"a": "b",
		"c": "d",
	})
	ts.Equal("b", Value(ctx, "a"))
	ts.Equal("d", Value(ctx, "c"))
}

func (ts *testsuite) TestFrom() {
	bg := Background()
	ts.Equal(bg, From(bg))

	plain, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := From(plain)
	cancel()
	<-c.Done()
	ts.ErrorIs(c.Err(), context.Canceled)
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context not cancelled")
	}
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context not timed out")
	}
	ts.ErrorIs(ctx.Err(), context.DeadlineExceeded)
}

func (ts *testsuite) TestZeroTimeoutNeverExpires() {
	ctx, cancel := WithTimeout(Background(), 0)
	defer cancel()
	_, ok := ctx.Deadline()
	ts.False(ok)
}

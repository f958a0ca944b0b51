package snowflake

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBizSnowflake(t *testing.T) {
	bizs := make([]string, 33)
	for i := range bizs {
		bizs[i] = fmt.Sprintf("biz-%d", i)
	}
	testcases := []struct {
		name        string
		nodeId      uint
		bizs        []string
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 32,
			bizs:   []string{"feedback"},
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "业务数量超出限制",
			nodeId: 3,
			bizs:   bizs,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedBiz)
			},
		},
		{
			name:        "生成正常",
			nodeId:      0,
			bizs:        bizs[:32],
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBizSnowflake(tt.nodeId, tt.bizs...)
			tt.wantErrFunc(t, err)
		})
	}
}

func TestBizSnowflake_Generate(t *testing.T) {
	bizs := []string{"feedback", "apikey", "other"}
	idmaker, err := NewBizSnowflake(1, bizs...)
	require.NoError(t, err)
	ids := make([]int64, 0, 30000)
	for _, biz := range bizs {
		for j := 0; j < 10000; j++ {
			id, err := idmaker.Generate(biz)
			require.NoError(t, err)
			ids = append(ids, id.Int64())
		}
	}
	// 校验生成的id是否重复
	idmap := make(map[int64]struct{}, len(ids))
	for i := 0; i < len(ids); i++ {
		_, ok := idmap[ids[i]]
		require.False(t, ok)
		idmap[ids[i]] = struct{}{}
	}
}

func TestBizSnowflake_Biz(t *testing.T) {
	idmaker, err := NewBizSnowflake(1, "feedback", "apikey")
	require.NoError(t, err)
	testcases := []struct {
		name    string
		biz     string
		wantErr require.ErrorAssertionFunc
	}{
		{
			name: "业务没找到",
			biz:  "order",
			wantErr: func(t require.TestingT, err error, i ...interface{}) {
				require.ErrorIs(t, err, ErrUnknownBiz)
			},
		},
		{
			name:    "反馈",
			biz:     "feedback",
			wantErr: require.NoError,
		},
		{
			name:    "API Key",
			biz:     "apikey",
			wantErr: require.NoError,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := idmaker.Generate(tc.biz)
			tc.wantErr(t, err)
			if err != nil {
				return
			}
			biz, ok := idmaker.Biz(id)
			assert.True(t, ok)
			assert.Equal(t, tc.biz, biz)
		})
	}
}

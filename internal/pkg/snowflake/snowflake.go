package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Generator 每个业务使用独立的 snowflake 节点
type Generator interface {
	Generate(biz string) (ID, error)
}

type BizSnowflake struct {
	// 键为业务名
	nodes syncx.Map[string, *snowflake.Node]
	bizs  []string
}

const (
	maxNode uint = 31
	maxBiz  int  = 32
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("业务数量超出限制")
	ErrUnknownBiz = errors.New("未知的业务")
)

// NewBizSnowflake 节点号的高 5 位是业务序号，低 5 位是机器号
func NewBizSnowflake(nodeID uint, bizs ...string) (*BizSnowflake, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w, node %d", ErrExceedNode, nodeID)
	}
	if len(bizs) > maxBiz {
		return nil, fmt.Errorf("%w, 业务数量 %d", ErrExceedBiz, len(bizs))
	}
	res := &BizSnowflake{bizs: bizs}
	for i, biz := range bizs {
		nid := (i << 5) | int(nodeID)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		res.nodes.Store(biz, n)
	}
	return res, nil
}

func (b *BizSnowflake) Generate(biz string) (ID, error) {
	n, ok := b.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w, biz %s", ErrUnknownBiz, biz)
	}
	return ID(n.Generate()), nil
}

// Biz 从 ID 里面解析出业务名
func (b *BizSnowflake) Biz(id ID) (string, bool) {
	idx := int(snowflake.ID(id).Node() >> 5)
	if idx >= len(b.bizs) {
		return "", false
	}
	return b.bizs[idx], true
}

type ID int64

func (f ID) Int64() int64 {
	return int64(f)
}

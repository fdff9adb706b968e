package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Empty(t *testing.T) {
	q := Build()
	assert.Empty(t, q.Conditions())
	assert.Empty(t, q.Orders())
	assert.Zero(t, q.LimitValue())
}

func TestBuild_Conditions(t *testing.T) {
	q := Build(
		WithCondition("source_id", "abc"),
		WithContains("content", "react"),
		WithNotNull("embedding"),
	)

	conds := q.Conditions()
	assert.Len(t, conds, 3)

	assert.Equal(t, "source_id", conds[0].Field())
	assert.Equal(t, "=", conds[0].Operator())
	assert.Equal(t, "abc", conds[0].Value())

	assert.Equal(t, "LIKE", conds[1].Operator())
	assert.Equal(t, "react", conds[1].Value())

	assert.Equal(t, "IS NOT NULL", conds[2].Operator())
	assert.Nil(t, conds[2].Value())
}

func TestBuild_OrderAndLimit(t *testing.T) {
	q := Build(
		WithOrderDesc("created_at"),
		WithOrderAsc("chunk_index"),
		WithLimit(10),
	)

	orders := q.Orders()
	assert.Len(t, orders, 2)
	assert.Equal(t, "created_at", orders[0].Field())
	assert.False(t, orders[0].Ascending())
	assert.True(t, orders[1].Ascending())
	assert.Equal(t, 10, q.LimitValue())
}

func TestQuery_AccessorsCopy(t *testing.T) {
	q := Build(WithCondition("id", 1))

	conds := q.Conditions()
	conds[0] = Condition{}

	assert.Equal(t, "id", q.Conditions()[0].Field())
}

package tsolution

type (
	// Block is the solution section. Count is stored as found and may
	// disagree with the number of populated conditions.
	Block struct {
		Count      uint16                   `json:"count"`
		Conditions [NumConditions]Condition `json:"conditions"`
		Delay      uint16                   `json:"delay"`
	}
	Condition struct {
		PartIndex  int16  `json:"part_index"`
		State1     uint16 `json:"state_1"`
		State2     uint16 `json:"state_2"`
		PartCount  uint16 `json:"part_count"`
		RectX      int16  `json:"rect_x"`
		RectY      int16  `json:"rect_y"`
		RectWidth  int16  `json:"rect_width"`
		RectHeight int16  `json:"rect_height"`
	}
)

const (
	NumConditions = 8
	ConditionSize = 16
	BlockSize     = 2 + NumConditions*ConditionSize + 2
)

func EmptyCondition() Condition {
	return Condition{PartIndex: -1}
}

// EmptyBlock has every condition slot unset.
func EmptyBlock() Block {
	block := Block{}
	for i := range block.Conditions {
		block.Conditions[i] = EmptyCondition()
	}
	return block
}

func (c Condition) IsEmpty() bool {
	return c == EmptyCondition()
}

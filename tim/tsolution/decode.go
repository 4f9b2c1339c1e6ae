package tsolution

import (
	"contraption/ds"
	"contraption/tim/lbytes"
	"github.com/pkg/errors"
)

func DecodeCondition(bs []byte) (*Condition, error) {
	reader := lbytes.NewBytesReader(bs)
	readU16 := lbytes.CreateU16ReadFunction(reader)
	readI16 := lbytes.CreateI16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "part_index", ReadFunction: readI16},
		{Key: "state_1", ReadFunction: readU16},
		{Key: "state_2", ReadFunction: readU16},
		{Key: "part_count", ReadFunction: readU16},
		{Key: "rect_x", ReadFunction: readI16},
		{Key: "rect_y", ReadFunction: readI16},
		{Key: "rect_width", ReadFunction: readI16},
		{Key: "rect_height", ReadFunction: readI16},
	}
	condition, err := lbytes.ExecuteInstructions[Condition](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "tsolution.DecodeCondition error")
	}
	return condition, nil
}

func DecodeBlock(reader *lbytes.Reader) (*Block, error) {
	block := Block{}
	err := error(nil)
	block.Count, err = reader.ReadU16()
	if err != nil {
		return nil, errors.Wrap(err, "tsolution.DecodeBlock error: read count")
	}
	conditionsBytes, err := reader.ReadBytes(NumConditions * ConditionSize)
	if err != nil {
		return nil, errors.Wrap(err, "tsolution.DecodeBlock error: read conditions")
	}
	for i, chunk := range ds.MakeChunks(conditionsBytes, ConditionSize) {
		condition, err := DecodeCondition(chunk)
		if err != nil {
			return nil, errors.Wrapf(err, "tsolution.DecodeBlock error: condition %d", i)
		}
		block.Conditions[i] = *condition
	}
	block.Delay, err = reader.ReadU16()
	if err != nil {
		return nil, errors.Wrap(err, "tsolution.DecodeBlock error: read delay")
	}
	return &block, nil
}

package wrc

import (
	"context"
	"encoding/json"
	"fmt"
)

// Penalties fetches the penalties applied during an event.
func (c *Client) Penalties(ctx context.Context, eventID int64) ([]Penalty, error) {
	var penalties []Penalty
	if err := c.getJSON(ctx, c.eventURL(eventID, "penalties"), &penalties); err != nil {
		return nil, err
	}
	return penalties, nil
}

// Retirements fetches the retirements recorded during an event.
func (c *Client) Retirements(ctx context.Context, eventID int64) ([]Retirement, error) {
	var retirements []Retirement
	if err := c.getJSON(ctx, c.eventURL(eventID, "retirements"), &retirements); err != nil {
		return nil, err
	}
	return retirements, nil
}

// Result fetches the final classification of an event.
func (c *Client) Result(ctx context.Context, eventID int64) ([]Position, error) {
	var positions []Position
	if err := c.getJSON(ctx, c.eventURL(eventID, "result"), &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// StageWinners fetches the winner of every stage of an event.
func (c *Client) StageWinners(ctx context.Context, eventID int64) ([]StageWinner, error) {
	var winners []StageWinner
	if err := c.getJSON(ctx, c.eventURL(eventID, "stage-winners"), &winners); err != nil {
		return nil, err
	}
	return winners, nil
}

// OverallResult fetches the overall classification as it stood after one
// stage. The payload omits the stage ID, so it is stamped into every row.
func (c *Client) OverallResult(ctx context.Context, eventID, stageID int64) ([]Position, error) {
	var positions []Position
	url := c.eventURL(eventID, fmt.Sprintf("stage-result/stage-external/%d", stageID))
	if err := c.getJSON(ctx, url, &positions); err != nil {
		return nil, err
	}
	for i := range positions {
		positions[i].StageID = stageID
	}
	return positions, nil
}

// MultiOverall fetches the overall classification after each listed stage
// and concatenates the rows in input-stage order. The first failing stage
// aborts the whole fetch.
func (c *Client) MultiOverall(ctx context.Context, eventID int64, stageIDs []int64) ([]Position, error) {
	var all []Position
	for _, stageID := range stageIDs {
		positions, err := c.OverallResult(ctx, eventID, stageID)
		if err != nil {
			return nil, err
		}
		all = append(all, positions...)
	}
	return all, nil
}

// StageTimes fetches every entry's time on one stage. Each record keeps its
// raw JSON for key-based pivoting.
func (c *Client) StageTimes(ctx context.Context, eventID, stageID int64) ([]StageTime, error) {
	var raws []json.RawMessage
	url := c.eventURL(eventID, fmt.Sprintf("stage-times/stage-external/%d", stageID))
	if err := c.getJSON(ctx, url, &raws); err != nil {
		return nil, err
	}
	times := make([]StageTime, 0, len(raws))
	for _, raw := range raws {
		var st StageTime
		if err := json.Unmarshal(raw, &st); err != nil {
			return nil, fmt.Errorf("decode stage time: %w", err)
		}
		st.Raw = raw
		times = append(times, st)
	}
	return times, nil
}

// MultiStageTimes fetches stage times for each listed stage and concatenates
// them in input-stage order. The first failing stage aborts the whole fetch.
func (c *Client) MultiStageTimes(ctx context.Context, eventID int64, stageIDs []int64) ([]StageTime, error) {
	var all []StageTime
	for _, stageID := range stageIDs {
		times, err := c.StageTimes(ctx, eventID, stageID)
		if err != nil {
			return nil, err
		}
		all = append(all, times...)
	}
	return all, nil
}

// MultiSplitTimes fetches the split-times payload for each listed stage, in
// input-stage order. The first failing stage aborts the whole fetch. Use
// reshape.DriverSplitsAll to flatten the batch into one record list.
func (c *Client) MultiSplitTimes(ctx context.Context, eventID int64, stageIDs []int64) ([]*SplitTimes, error) {
	all := make([]*SplitTimes, 0, len(stageIDs))
	for _, stageID := range stageIDs {
		splits, err := c.SplitTimes(ctx, eventID, stageID)
		if err != nil {
			return nil, err
		}
		all = append(all, splits)
	}
	return all, nil
}

// SplitTimes fetches the split-times payload for one stage.
func (c *Client) SplitTimes(ctx context.Context, eventID, stageID int64) (*SplitTimes, error) {
	var splits SplitTimes
	url := c.eventURL(eventID, fmt.Sprintf("split-times/stage-external/%d", stageID))
	if err := c.getJSON(ctx, url, &splits); err != nil {
		return nil, err
	}
	return &splits, nil
}

package prominence

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
)

// Message tags of a campaign transmission.
const (
	tagCPK      = "abncpk"
	tagCampaign = "gsccampaign"
	tagDiary    = "diary"
)

// transmission is a signed campaign transaction found in the window.
type transmission struct {
	height   types.Height
	tx       types.Hash32
	campaign string
	cpk      types.Address
	diary    string
	coinAge  float64
	donation types.Amount
}

// scan reads blocks [from, to) in parallel and returns their transmissions in
// ascending (height, transaction index) order.
func (e *Engine) scan(ctx context.Context, from, to types.Height) ([]transmission, error) {
	perBlock := make([][]transmission, to-from)
	var eg errgroup.Group
	eg.SetLimit(e.cfg.ScanWorkers)
	for h := from; h < to; h++ {
		eg.Go(func() error {
			block, err := e.chain.BlockAt(ctx, h)
			if err != nil {
				return fmt.Errorf("block %d: %w", h, err)
			}
			perBlock[h-from] = e.transmissions(block)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	var rst []transmission
	for _, txs := range perBlock {
		rst = append(rst, txs...)
	}
	return rst, nil
}

func (e *Engine) transmissions(block *types.Block) []transmission {
	var rst []transmission
	for _, tx := range block.Txs {
		if !tx.GSCTransmission || !e.txs.AntiBotNetSigned(tx) {
			continue
		}
		rst = append(rst, transmission{
			height:   block.Height,
			tx:       tx.ID,
			campaign: strings.ToUpper(contract.Extract(tx.Message, tagCampaign)),
			cpk:      types.Address(contract.Extract(tx.Message, tagCPK)),
			diary:    contract.Extract(tx.Message, tagDiary),
			coinAge:  e.txs.CoinAge(block, tx),
			donation: e.txs.Tithe(block, tx),
		})
	}
	return rst
}

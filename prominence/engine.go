// Package prominence turns a day of campaign transmissions into the payment
// contract of a superblock.
package prominence

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/campaign"
	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/spork"
	"github.com/biblepay/go-gsc/sql/identities"
	"github.com/biblepay/go-gsc/system"
)

type Opt func(*Engine)

func WithLogger(logger *zap.Logger) Opt {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

func WithFeatures(features spork.FeatureFlags) Opt {
	return func(e *Engine) {
		e.features = features
	}
}

// Engine assesses campaign windows. It is safe for concurrent use.
type Engine struct {
	logger   *zap.Logger
	cfg      Config
	features spork.FeatureFlags

	chain       system.Chain
	txs         system.TxEvaluator
	sporks      system.ParameterStore
	rules       *campaign.Rules
	researchers system.ResearcherRegistry
	directory   system.IdentityDirectory
	oracle      system.PriceOracle
	whales      system.WhaleStakes
}

func New(
	chain system.Chain,
	txs system.TxEvaluator,
	sporks system.ParameterStore,
	rules *campaign.Rules,
	researchers system.ResearcherRegistry,
	directory system.IdentityDirectory,
	oracle system.PriceOracle,
	whales system.WhaleStakes,
	opts ...Opt,
) *Engine {
	e := &Engine{
		logger:      zap.NewNop(),
		cfg:         DefaultConfig(),
		features:    spork.DefaultFeatureFlags(),
		chain:       chain,
		txs:         txs,
		sporks:      sporks,
		rules:       rules,
		researchers: researchers,
		directory:   directory,
		oracle:      oracle,
		whales:      whales,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// tally accumulates points of one identity, either overall or within one campaign.
type tally struct {
	address    types.Address
	nick       string
	campaign   string
	cpid       string
	points     float64
	prominence float64
}

// assessment holds the state of a single Assess call.
type assessment struct {
	*Engine
	params *spork.Params
	target types.Height
	gross  types.Amount
	limit  types.Amount

	researchers map[string]*types.Researcher
	byCPK       map[types.Address]string
	nicks       map[types.Address]string

	identities  map[types.Address]*tally
	cpkCampaign map[string]*tally
	campaigns   map[string]float64
	diaries     strings.Builder

	priced bool
	price  float64
}

// Assess computes the contract for the window ending at target. When creating
// is set the price data and matured whale stakes are included as well.
func (e *Engine) Assess(ctx context.Context, target types.Height, creating bool) (*contract.Contract, error) {
	start := time.Now()
	c, err := e.assess(ctx, target, creating)
	assessLatency.WithLabelValues(strconv.FormatBool(creating)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	e.logger.Debug("window assessed",
		log.ZHeight("target", target),
		zap.Bool("creating", creating),
		log.ZShortStringer("fingerprint", c.Fingerprint()),
		zap.Duration("duration", time.Since(start)),
	)
	return c, nil
}

func (e *Engine) assess(ctx context.Context, target types.Height, creating bool) (*contract.Contract, error) {
	params, err := spork.Resolve(e.sporks, e.rules.Campaigns())
	if err != nil {
		return nil, err
	}
	gross, err := e.chain.PaymentsLimit(target)
	if err != nil {
		budgetErrors.Inc()
		return nil, fmt.Errorf("%w: %w", ErrBudgetUnavailable, err)
	}
	limit, err := e.paymentsLimit(gross, params)
	if err != nil {
		budgetErrors.Inc()
		return nil, err
	}
	from, to, err := e.window(target)
	if err != nil {
		windowErrors.Inc()
		return nil, err
	}
	researchers, err := e.researchers.Researchers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load researchers: %w", err)
	}
	txs, err := e.scan(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowUnavailable, err)
	}

	a := &assessment{
		Engine:      e,
		params:      params,
		target:      to,
		gross:       gross,
		limit:       limit,
		researchers: make(map[string]*types.Researcher, len(researchers)),
		byCPK:       make(map[types.Address]string, len(researchers)),
		nicks:       make(map[types.Address]string),
		identities:  make(map[types.Address]*tally),
		cpkCampaign: make(map[string]*tally),
		campaigns:   make(map[string]float64),
	}
	for _, cpid := range slices.Sorted(maps.Keys(researchers)) {
		r := *researchers[cpid]
		a.researchers[cpid] = &r
		if _, exists := a.byCPK[r.CPK]; r.CPK != "" && !exists {
			a.byCPK[r.CPK] = cpid
		}
	}
	if err := a.walk(ctx, txs); err != nil {
		return nil, err
	}
	if err := a.research(); err != nil {
		return nil, err
	}
	return a.render(ctx, creating)
}

func (e *Engine) window(target types.Height) (types.Height, types.Height, error) {
	tip, err := e.chain.Tip()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrWindowUnavailable, err)
	}
	if target > tip.Height {
		target = tip.Height.Sub(1)
	}
	start := int64(target) - int64(e.cfg.BlocksPerDay)
	if start < 1 || start > int64(tip.Height) {
		return 0, 0, fmt.Errorf("%w: start %d tip %d", ErrWindowUnavailable, start, tip.Height)
	}
	return types.Height(start), target, nil
}

// paymentsLimit withholds the block subsidy and the configured buffer from the gross budget.
func (e *Engine) paymentsLimit(gross types.Amount, params *spork.Params) (types.Amount, error) {
	limit := gross - types.Amount(e.cfg.MaxBlockSubsidy)*types.Coin
	if buffer := params.PaymentBuffer; buffer > 0 && buffer < int64(limit/types.Coin) {
		limit -= types.Amount(buffer) * types.Coin
	}
	if limit <= 0 {
		return 0, fmt.Errorf("%w: gross %s limit %s", ErrBudgetUnavailable, gross, limit)
	}
	return limit, nil
}

func (a *assessment) nick(cpk types.Address) (string, error) {
	if nick, ok := a.nicks[cpk]; ok {
		return nick, nil
	}
	nick, err := a.directory.NickName(cpk)
	if err != nil {
		return "", fmt.Errorf("nickname %s: %w", cpk, err)
	}
	nick = clean(nick)
	a.nicks[cpk] = nick
	return nick, nil
}

// walk credits the transmissions in window order.
func (a *assessment) walk(ctx context.Context, txs []transmission) error {
	for _, t := range txs {
		if !a.rules.Known(t.campaign) {
			transmissions.WithLabelValues("unknown").Inc()
			continue
		}
		transmissions.WithLabelValues(t.campaign).Inc()
		if t.cpk == "" {
			continue
		}
		if campaign.IsCharity(t.campaign) {
			// sponsorship is credited once per window
			if cc, ok := a.cpkCampaign[string(t.cpk)+t.campaign]; ok && cc.points > 0 {
				continue
			}
		}
		points, err := a.rules.Score(ctx, a.params, t.campaign, t.diary, t.coinAge, t.donation, t.cpk)
		if err != nil {
			return fmt.Errorf("score %s: %w", t.tx.ShortString(), err)
		}
		if t.campaign == campaign.WCG {
			if points > 0 {
				a.stake(t.cpk, points)
			}
			continue
		}
		if points <= 0 {
			continue
		}
		c, err := a.credit(t.cpk, t.campaign, "", points)
		if err != nil {
			return err
		}
		if a.cfg.AnalyzeUser != "" && a.cfg.AnalyzeUser == c.nick {
			a.logger.Debug("analyzed user credited",
				zap.Stringer("cpk", t.cpk),
				zap.String("campaign", t.campaign),
				log.ZHeight("height", t.height),
				log.ZShortStringer("tx", t.tx),
				zap.Float64("points", points),
				zap.Float64("coin age", t.coinAge),
				zap.Stringer("donation", t.donation),
				zap.Float64("user total", c.points),
			)
		}
		if t.campaign == campaign.Healing && t.diary != "" {
			a.diaries.WriteString("\n" + string(t.cpk) + "|" + c.nick + "|" + clean(t.diary))
		}
	}
	return nil
}

// stake adds research coin age to the researcher owning cpk.
func (a *assessment) stake(cpk types.Address, coinAge float64) {
	cpid := a.byCPK[cpk]
	r, ok := a.researchers[cpid]
	if !ok || !r.Found {
		a.logger.Debug("no researcher for cpk", zap.Stringer("cpk", cpk))
		return
	}
	r.CoinAge += coinAge
}

// research credits researchers whose staked coin age covers their credit.
func (a *assessment) research() error {
	for _, cpid := range slices.Sorted(maps.Keys(a.researchers)) {
		r := a.researchers[cpid]
		points, ok := campaign.Credit(r, a.params)
		if !ok || r.CPK == "" {
			continue
		}
		c, err := a.credit(r.CPK, campaign.WCG, cpid, points)
		if err != nil {
			return err
		}
		if a.cfg.AnalyzeUser != "" && a.cfg.AnalyzeUser == c.nick {
			a.logger.Debug("analyzed researcher credited",
				zap.Stringer("cpk", r.CPK),
				zap.String("cpid", cpid),
				zap.Float64("points", points),
				zap.Float64("coin age", r.CoinAge),
				zap.Float64("rac", r.RAC),
				zap.Float64("user total", c.points),
			)
		}
	}
	return nil
}

func (a *assessment) credit(cpk types.Address, name, cpid string, points float64) (*tally, error) {
	nick, err := a.nick(cpk)
	if err != nil {
		return nil, err
	}
	c, ok := a.identities[cpk]
	if !ok {
		c = &tally{address: cpk}
		a.identities[cpk] = c
	}
	c.campaign = name
	c.nick = nick
	c.points += points
	if cpid != "" {
		c.cpid = cpid
	}
	a.campaigns[name] += points

	key := string(cpk) + name
	cc, ok := a.cpkCampaign[key]
	if !ok {
		cc = &tally{address: cpk, campaign: name}
		a.cpkCampaign[key] = cc
	}
	cc.nick = nick
	cc.points += points
	if cpid != "" {
		cc.cpid = cpid
	}
	return c, nil
}

// priceOrFallback returns the oracle price, querying it at most once per assessment.
func (a *assessment) priceOrFallback(ctx context.Context) float64 {
	if !a.priced {
		q, err := a.oracle.Quote(ctx)
		if err != nil {
			a.logger.Warn("price unavailable, using fallback", zap.Error(err))
		}
		a.price = q.Price
		a.priced = true
	}
	if a.price <= 0 {
		return a.cfg.FallbackPrice
	}
	return a.price
}

// capProminence limits charity prominence so that the payout in USD does not
// exceed what the sponsor spent on the day.
func (a *assessment) capProminence(ctx context.Context, name string, points, prominence float64) float64 {
	if !campaign.IsCharity(name) {
		return prominence
	}
	daily := a.params.MonthlyRate(name) / 30
	if daily <= 0.01 {
		return 0
	}
	spent := points / 1000
	price := a.priceOrFallback(ctx)
	if a.gross < 1 {
		return 0
	}
	budget := float64(a.gross / types.Coin)
	if budget*prominence*price > spent {
		capped := spent / price / budget
		a.logger.Debug("prominence capped",
			zap.String("campaign", name),
			zap.Float64("points", points),
			zap.Float64("prominence", prominence),
			zap.Float64("capped", capped),
		)
		prominence = capped
	}
	return prominence
}

func (a *assessment) render(ctx context.Context, creating bool) (*contract.Contract, error) {
	members := slices.Sorted(maps.Keys(a.identities))

	var (
		details     strings.Builder
		totalPoints float64
	)
	for _, name := range slices.Sorted(maps.Keys(a.campaigns)) {
		pct := a.params.CampaignPercentage(name)
		campaignPoints := a.campaigns[name] + 1
		totalPoints += campaignPoints
		for _, addr := range members {
			cc, ok := a.cpkCampaign[string(addr)+name]
			if !ok {
				continue
			}
			cc.prominence = a.capProminence(ctx, name, cc.points, cc.points/campaignPoints*pct)
			label := name
			if cpid := a.identities[addr].cpid; name == campaign.WCG && cpid != "" {
				label = name + "-" + cpid
			}
			row := strings.Join([]string{
				label,
				string(addr),
				types.RoundToString(cc.points, 0),
				types.RoundToString(cc.prominence, 8),
				a.identities[addr].nick,
				types.RoundToString(campaignPoints, 0),
			}, "|") + "\n"
			if cc.prominence > 0 {
				details.WriteString(row)
			}
		}
	}
	for _, key := range slices.Sorted(maps.Keys(a.cpkCampaign)) {
		cc := a.cpkCampaign[key]
		a.identities[cc.address].prominence += cc.prominence
	}

	var (
		payees          []contract.Payee
		data            strings.Builder
		export          strings.Builder
		totalProminence float64
		minPayment      = a.params.MinPayment() * float64(types.Coin)
	)
	for _, addr := range members {
		m := a.identities[addr]
		payment := types.Amount(m.prominence * float64(a.limit) * a.cfg.MaxContractPercentage)
		if err := types.ValidateAddress(addr, a.cfg.Addresses); err != nil {
			a.logger.Debug("skipping invalid address", zap.Error(err))
			continue
		}
		if float64(payment) <= minPayment {
			continue
		}
		amount := types.RoundToString(payment.Coins(), 2)
		if a.params.ContractType == spork.ContractWholeCoins {
			amount = types.RoundToString(float64(payment.WholeCoins()), 2)
		}
		payees = append(payees, contract.Payee{Address: addr, Amount: amount})
		data.WriteString(strings.Join([]string{
			"ALL",
			string(addr),
			types.RoundToString(m.points, 0),
			types.RoundToString(m.prominence, 4),
			m.nick,
			types.RoundToString(payment.Coins(), 2),
		}, "|") + "\n")
		totalProminence += m.prominence
		export.WriteString(contract.Wrap(contract.TagCPK, strings.Join([]string{
			string(addr),
			types.RoundToString(m.points, 0),
			types.RoundToString(m.prominence, 4),
			m.nick,
		}, "|")))
	}

	var qtData, dwsData string
	if creating {
		var err error
		payees, qtData, dwsData, err = a.creating(ctx, payees)
		if err != nil {
			return nil, err
		}
	}

	limitCoins := float64(a.limit / types.Coin)
	metrics := contract.Wrap(contract.TagLimit, types.RoundToString(limitCoins, 4)) +
		contract.Wrap(contract.TagTotalProminence, types.RoundToString(totalProminence, 2)) +
		contract.Wrap(contract.TagTotalPayout, types.RoundToString(totalProminence*a.limit.Coins(), 2)) +
		contract.Wrap(contract.TagTotalPoints, types.RoundToString(totalPoints, 2))

	identityList, nodeList, err := a.registrations()
	if err != nil {
		return nil, err
	}

	addresses, amounts := contract.JoinPayees(payees)
	c := &contract.Contract{}
	c.Set(contract.TagAddresses, addresses).
		Set(contract.TagPayments, amounts).
		Set(contract.TagData, data.String()).
		Set(contract.TagDetails, details.String()).
		Set(contract.TagDiaries, a.diaries.String()).
		Set(contract.TagMetrics, metrics)
	if creating {
		c.Set(contract.TagQTData, qtData).Set(contract.TagDWSData, dwsData)
	}
	c.Set(contract.TagProminence, export.String()).
		Set(contract.TagCPKList, identityList).
		Set(contract.TagNodes, nodeList)
	return c, nil
}

// creating appends the price phase and whale stake payments.
func (a *assessment) creating(ctx context.Context, payees []contract.Payee) ([]contract.Payee, string, string, error) {
	q, err := a.oracle.Quote(ctx)
	if err != nil {
		a.logger.Warn("price unavailable for contract", zap.Error(err))
		q = types.Quote{}
	}
	if a.features.FoundationQTPayment && q.Phase > 0 && a.features.FoundationAddress != "" {
		payees = append(payees, contract.Payee{
			Address: types.Address(a.features.FoundationAddress),
			Amount:  types.RoundToString(q.Phase/100, 4),
		})
	}
	qtData := contract.Wrap(contract.TagPrice, types.RoundToString(q.Price, 12)) +
		contract.Wrap(contract.TagBTCPrice, types.RoundToString(q.BTCPrice, 2)) +
		contract.Wrap(contract.TagQTPhase, types.RoundToString(q.Phase, 0))

	stakes, err := a.whales.Payable(ctx, a.target)
	if err != nil {
		return nil, "", "", fmt.Errorf("whale stakes: %w", err)
	}
	var (
		dws   strings.Builder
		total float64
	)
	for _, ws := range stakes {
		if !ws.Found || ws.TotalOwed <= 0 || ws.ReturnAddress == "" {
			continue
		}
		owed := types.RoundToString(ws.TotalOwed, 4)
		payees = append(payees, contract.Payee{Address: ws.ReturnAddress, Amount: owed})
		dws.WriteString(contract.Wrap(contract.TagDWSAddress, string(ws.ReturnAddress)))
		dws.WriteString(contract.Wrap(contract.TagDWSAmount, owed))
		total += ws.TotalOwed
	}
	dws.WriteString(contract.Wrap(contract.TagDWSTotal, types.RoundToString(total, 4)))
	a.logger.Info("creating contract with whale payments",
		log.ZHeight("target", a.target),
		zap.Float64("whale total", total),
		zap.Int("stakes", len(stakes)),
	)
	return payees, qtData, dws.String(), nil
}

func (a *assessment) registrations() (string, string, error) {
	var identityList, nodeList strings.Builder
	if a.features.ExportIdentityList {
		members, err := a.directory.Members(identities.ProjectCPK)
		if err != nil {
			return "", "", fmt.Errorf("identity list: %w", err)
		}
		for _, m := range members {
			identityList.WriteString(contract.Wrap(contract.TagIdentity, string(m.CPK)+"|"+clean(m.NickName)))
		}
	}
	if a.features.ExportNodeList {
		members, err := a.directory.Members(identities.ProjectNode)
		if err != nil {
			return "", "", fmt.Errorf("node list: %w", err)
		}
		for _, m := range members {
			nodeList.WriteString(contract.Wrap(contract.TagNode, string(m.CPK)+"|"+clean(m.NickName)))
		}
	}
	return identityList.String(), nodeList.String(), nil
}

// clean strips characters that would break the contract layout.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '|', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

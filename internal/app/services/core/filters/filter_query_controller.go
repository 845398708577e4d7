package filters

import (
	"context"
	"strconv"
	"sync"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"
	"consultant-discovery/internal/pkg/utils"

	"go.uber.org/zap"
)

// Listener is told about every change of the result set that a current query produced.
type Listener func(snapshot models.ResultSetSnapshot)

type Options struct {
	SearchDebounce time.Duration
	SearchTimeout  time.Duration
	AfterFunc      utils.AfterFunc
	Now            func() time.Time
}

// FilterQueryController owns the filter state and turns its changes into search queries.
// Every issued query gets a generation; only the latest generation may touch the result set.
type FilterQueryController struct {
	mu            sync.Mutex
	criteria      models.FilterCriteria
	coordinate    models.Coordinate
	generation    uint64
	debounceTimer utils.Timer
	debounceSeq   uint64
	stopped       bool

	// publishMu orders apply-and-notify so listeners observe generations in issue order.
	publishMu sync.Mutex
	listeners []Listener
	inflight  sync.WaitGroup

	searchBackend contracts.SearchBackend
	resultSet     contracts.ConsultantResultSet
	notifier      contracts.Notifier
	options       Options
	Log           *zap.Logger
}

func NewFilterQueryController(
	searchBackend contracts.SearchBackend,
	resultSet contracts.ConsultantResultSet,
	notifier contracts.Notifier,
	options Options,
	logger *zap.Logger,
) *FilterQueryController {
	if options.AfterFunc == nil {
		options.AfterFunc = utils.RealAfterFunc
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &FilterQueryController{
		criteria:      models.DefaultFilterCriteria(),
		searchBackend: searchBackend,
		resultSet:     resultSet,
		notifier:      notifier,
		options:       options,
		Log:           logger,
	}
}

func (c *FilterQueryController) Subscribe(listener Listener) {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()
	c.listeners = append(c.listeners, listener)
}

// Start sets the first coordinate and issues the initial query.
func (c *FilterQueryController) Start(coordinate models.Coordinate) uint64 {
	c.mu.Lock()
	c.coordinate = coordinate
	c.mu.Unlock()
	return c.issue("start")
}

// SetSearchText restarts the quiet period on every edit. One query fires once it elapses.
func (c *FilterQueryController) SetSearchText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.criteria.SearchText = text
	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
	}
	c.debounceSeq++
	seq := c.debounceSeq
	c.debounceTimer = c.options.AfterFunc(c.options.SearchDebounce, func() {
		c.fireDebounced(seq)
	})
}

func (c *FilterQueryController) SetSpecialty(value string) bool {
	return c.setDropdown(func(criteria *models.FilterCriteria) *string { return &criteria.Specialty }, value, "specialty")
}

func (c *FilterQueryController) SetAvailability(value string) bool {
	return c.setDropdown(func(criteria *models.FilterCriteria) *string { return &criteria.Availability }, value, "availability")
}

func (c *FilterQueryController) SetMinRating(value string) bool {
	return c.setDropdown(func(criteria *models.FilterCriteria) *string { return &criteria.MinRating }, value, "rating")
}

// SetCoordinate re-queries immediately when the coordinate actually moved.
func (c *FilterQueryController) SetCoordinate(coordinate models.Coordinate) bool {
	c.mu.Lock()
	if c.coordinate == coordinate {
		c.mu.Unlock()
		return false
	}
	c.coordinate = coordinate
	c.mu.Unlock()

	c.issue("coordinate")
	return true
}

// Clear drops a pending debounced edit, resets every criterion and queries at once.
func (c *FilterQueryController) Clear() uint64 {
	c.mu.Lock()
	c.cancelDebounceLocked()
	c.criteria = models.DefaultFilterCriteria()
	c.mu.Unlock()

	return c.issue("clear")
}

func (c *FilterQueryController) Refresh() uint64 {
	return c.issue("refresh")
}

func (c *FilterQueryController) Criteria() models.FilterCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

func (c *FilterQueryController) Coordinate() models.Coordinate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coordinate
}

// Generation is the most recently issued query generation.
func (c *FilterQueryController) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Wait blocks until every issued query has been applied or discarded.
func (c *FilterQueryController) Wait() {
	c.inflight.Wait()
}

// Stop cancels a pending debounce, refuses new queries and waits for in-flight ones.
func (c *FilterQueryController) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.cancelDebounceLocked()
	c.mu.Unlock()
	c.Wait()
}

func (c *FilterQueryController) setDropdown(field func(*models.FilterCriteria) *string, value, trigger string) bool {
	c.mu.Lock()
	target := field(&c.criteria)
	if *target == value {
		c.mu.Unlock()
		return false
	}
	*target = value
	c.mu.Unlock()

	c.issue(trigger)
	return true
}

func (c *FilterQueryController) fireDebounced(seq uint64) {
	c.mu.Lock()
	if seq != c.debounceSeq || c.stopped {
		c.mu.Unlock()
		return
	}
	c.debounceTimer = nil
	c.mu.Unlock()

	c.issue("search_text")
}

func (c *FilterQueryController) cancelDebounceLocked() {
	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
		c.debounceTimer = nil
	}
	c.debounceSeq++
}

func (c *FilterQueryController) issue(trigger string) uint64 {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return 0
	}
	c.generation++
	generation := c.generation
	request := models.SearchRequest{Criteria: c.criteria, Coordinate: c.coordinate}
	c.inflight.Add(1)
	c.mu.Unlock()

	c.Log.Info("FilterQueryController.issue called",
		zap.String("trigger", trigger),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
		zap.Any(constvars.LoggingCriteriaKey, request.Criteria),
		zap.Float64(constvars.LoggingLatitudeKey, request.Coordinate.Lat),
		zap.Float64(constvars.LoggingLongitudeKey, request.Coordinate.Lng),
	)

	go c.run(generation, request)
	return generation
}

func (c *FilterQueryController) run(generation uint64, request models.SearchRequest) {
	defer c.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), c.options.SearchTimeout)
	defer cancel()

	var consultants []models.Consultant
	operation := "FilterQueryController.search#" + strconv.FormatUint(generation, 10)
	err := utils.LogOperation(c.Log, operation, "", func() error {
		var searchErr error
		consultants, searchErr = c.searchBackend.Search(ctx, request)
		return searchErr
	})

	c.apply(generation, consultants, err)
}

func (c *FilterQueryController) apply(generation uint64, consultants []models.Consultant, err error) {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	c.mu.Lock()
	latest := c.generation
	c.mu.Unlock()

	if generation != latest {
		c.Log.Debug("FilterQueryController.apply discarded stale response",
			zap.Uint64(constvars.LoggingGenerationKey, generation),
			zap.Uint64(constvars.LoggingLatestGenKey, latest),
			zap.Bool(constvars.LoggingSuccessKey, err == nil),
		)
		return
	}

	if err != nil {
		queryErr := exceptions.ErrQueryFailed(err)
		c.Log.Warn("FilterQueryController.apply query failed, switching to degraded view",
			zap.Uint64(constvars.LoggingGenerationKey, generation),
			zap.Error(queryErr),
		)
		c.resultSet.MarkDegraded()
		c.notifier.Push(queryErr.ClientMessage, models.SeverityError)
	} else {
		c.resultSet.Replace(generation, consultants, c.options.Now())
	}

	snapshot := c.resultSet.Snapshot()
	for _, listener := range c.listeners {
		listener(snapshot)
	}
}

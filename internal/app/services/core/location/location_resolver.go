package location

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	sourcePersisted = "persisted"
	sourceDevice    = "device"
	sourceDefault   = "default"
	sourceManual    = "manual"
	sourceLocate    = "locate"
)

const positionKey = "device_position"

// LocationResolver owns the working coordinate. Every replacement bumps version so a
// background fix that finishes late cannot overwrite a newer choice.
type LocationResolver struct {
	mu        sync.Mutex
	current   models.Coordinate
	version   uint64
	onChange  func(models.Coordinate)
	wg        sync.WaitGroup
	positions singleflight.Group

	locator  contracts.DeviceLocator
	geocoder contracts.Geocoder
	store    contracts.CoordinateStore
	notifier contracts.Notifier
	timeout  time.Duration
	Log      *zap.Logger
}

func NewLocationResolver(
	locator contracts.DeviceLocator,
	geocoder contracts.Geocoder,
	store contracts.CoordinateStore,
	notifier contracts.Notifier,
	timeout time.Duration,
	logger *zap.Logger,
) *LocationResolver {
	return &LocationResolver{
		current:  models.DefaultCoordinate,
		locator:  locator,
		geocoder: geocoder,
		store:    store,
		notifier: notifier,
		timeout:  timeout,
		Log:      logger,
	}
}

// OnChange registers the callback fired whenever the working coordinate moves after Resolve
// returned: a late background fix, a manual place, or a locate request.
func (r *LocationResolver) OnChange(callback func(models.Coordinate)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = callback
}

// Resolve never fails. It prefers the persisted coordinate, then a live fix, then the default.
func (r *LocationResolver) Resolve(ctx context.Context) models.Coordinate {
	r.Log.Info("LocationResolver.Resolve called")

	stored, ok, err := r.store.Load(ctx)
	if err != nil {
		r.Log.Warn("LocationResolver.Resolve error loading persisted coordinate", zap.Error(err))
	}
	if ok {
		version := r.replace(stored, sourcePersisted)
		r.wg.Add(1)
		go r.refreshInBackground(version)
		return stored
	}

	coordinate, err := r.requestPosition(ctx)
	if err != nil {
		r.Log.Warn("LocationResolver.Resolve falling back to default coordinate", zap.Error(err))
		r.replace(models.DefaultCoordinate, sourceDefault)
		r.notifier.Push(constvars.NotifyLocationDefaultFallback, models.SeverityWarning)
		return models.DefaultCoordinate
	}

	r.replace(coordinate, sourceDevice)
	r.persist(ctx, coordinate)
	return coordinate
}

func (r *LocationResolver) refreshInBackground(version uint64) {
	defer r.wg.Done()

	coordinate, err := r.requestPosition(context.Background())
	if err != nil {
		r.Log.Warn("LocationResolver.refreshInBackground live fix failed, keeping persisted coordinate", zap.Error(err))
		return
	}

	r.mu.Lock()
	if r.version != version {
		r.mu.Unlock()
		r.Log.Debug("LocationResolver.refreshInBackground discarding superseded fix")
		return
	}
	r.current = coordinate
	r.version++
	callback := r.onChange
	r.mu.Unlock()

	r.logChange(coordinate, sourceDevice)
	r.persist(context.Background(), coordinate)
	if callback != nil {
		callback(coordinate)
	}
}

// SetManual geocodes placeName and adopts the first match. Blank input changes nothing.
func (r *LocationResolver) SetManual(ctx context.Context, placeName string) (models.Coordinate, error) {
	placeName = strings.TrimSpace(placeName)
	if placeName == "" {
		return r.Current(), nil
	}

	r.Log.Info("LocationResolver.SetManual called", zap.String(constvars.LoggingPlaceNameKey, placeName))

	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	matches, err := r.geocoder.Lookup(lookupCtx, placeName)
	if err != nil {
		r.notifier.Push(constvars.NotifyLocationLookupFailed, models.SeverityError)
		return r.Current(), exceptions.ErrGeocodeFailed(err, placeName)
	}
	if len(matches) == 0 || matches[0].Validate() != nil {
		r.notifier.Push(constvars.NotifyLocationNotFound, models.SeverityError)
		return r.Current(), exceptions.ErrGeocodeNotFound(placeName)
	}

	coordinate := matches[0]
	r.adopt(ctx, coordinate, sourceManual)
	return coordinate, nil
}

// Locate asks the device again. On failure the working coordinate is kept.
func (r *LocationResolver) Locate(ctx context.Context) (models.Coordinate, error) {
	r.Log.Info("LocationResolver.Locate called")

	coordinate, err := r.requestPosition(ctx)
	if err != nil {
		r.notifier.Push(constvars.NotifyLocationLocateFailed, models.SeverityWarning)
		return r.Current(), err
	}

	r.adopt(ctx, coordinate, sourceLocate)
	return coordinate, nil
}

func (r *LocationResolver) Current() models.Coordinate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Wait blocks until background fixes have finished.
func (r *LocationResolver) Wait() {
	r.wg.Wait()
}

// requestPosition joins the pending device request when there is one. A caller whose
// context ends first gets a timeout while the shared request keeps running.
func (r *LocationResolver) requestPosition(ctx context.Context) (models.Coordinate, error) {
	r.wg.Add(1)
	result := r.positions.DoChan(positionKey, r.runPositionRequest)

	select {
	case outcome := <-result:
		r.wg.Done()
		if outcome.Err != nil {
			return models.Coordinate{}, outcome.Err
		}
		return outcome.Val.(models.Coordinate), nil
	case <-ctx.Done():
		go func() {
			defer r.wg.Done()
			<-result
		}()
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(errors.Join(exceptions.ErrLocationTimeout, ctx.Err()))
	}
}

func (r *LocationResolver) runPositionRequest() (interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	coordinate, err := r.locator.RequestPosition(ctx)
	if err == nil {
		err = coordinate.Validate()
	}
	if err != nil && !errors.Is(err, exceptions.ErrKindLocationUnavailable) {
		err = exceptions.ErrLocationUnavailable(err)
	}
	if err != nil {
		return nil, err
	}
	return coordinate, nil
}

func (r *LocationResolver) adopt(ctx context.Context, coordinate models.Coordinate, source string) {
	r.mu.Lock()
	r.current = coordinate
	r.version++
	callback := r.onChange
	r.mu.Unlock()

	r.logChange(coordinate, source)
	r.persist(ctx, coordinate)
	if callback != nil {
		callback(coordinate)
	}
}

func (r *LocationResolver) replace(coordinate models.Coordinate, source string) uint64 {
	r.mu.Lock()
	r.current = coordinate
	r.version++
	version := r.version
	r.mu.Unlock()

	r.logChange(coordinate, source)
	return version
}

func (r *LocationResolver) persist(ctx context.Context, coordinate models.Coordinate) {
	err := r.store.Save(ctx, coordinate)
	if err != nil {
		r.Log.Warn("LocationResolver.persist error saving coordinate", zap.Error(err))
	}
}

func (r *LocationResolver) logChange(coordinate models.Coordinate, source string) {
	r.Log.Info("LocationResolver working coordinate changed",
		zap.String(constvars.LoggingLocationSrcKey, source),
		zap.Float64(constvars.LoggingLatitudeKey, coordinate.Lat),
		zap.Float64(constvars.LoggingLongitudeKey, coordinate.Lng),
	)
}

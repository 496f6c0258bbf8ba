package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

var (
	ErrOccurrenceNotFound     = errors.New("occurrence not found")
	ErrInvalidOccurrenceID    = errors.New("invalid occurrence id")
	ErrMissingField           = errors.New("missing required field")
	ErrUnknownClient          = errors.New("unknown client")
	ErrUnknownProvider        = errors.New("unknown provider")
	ErrProviderNotApproved    = errors.New("provider is not approved")
	ErrProviderBusy           = errors.New("provider already has an active occurrence")
	ErrConcurrentModification = errors.New("occurrence was modified concurrently")
	ErrNoPhotos               = errors.New("no photos provided")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidDateRange       = errors.New("invalid date range")
)

const maxPhotoAppendAttempts = 3

// OptionalFloat distinguishes "field absent" (Set == false) from an explicit
// null (Set == true, Value == nil). Null means unknown, never zero.
type OptionalFloat struct {
	Set   bool
	Value *float64
}

// OccurrenceInput carries the fields of a create or update request. Nil
// pointers leave the stored value untouched.
type OccurrenceInput struct {
	Tipo      *string
	Placa1    *string
	Placa2    *string
	Placa3    *string
	Modelo    *string
	Cor       *string
	Descricao *string
	Endereco  *string
	Cidade    *string
	Estado    *string
	Operador  *string

	Cliente     *string
	ClienteID   *int64
	Prestador   *string
	PrestadorID *int64

	Status    *entities.OccurrenceStatus
	Resultado *string

	Despesas           OptionalFloat
	DespesasDetalhadas *[]entities.ExpenseItem
	Km                 OptionalFloat

	Chegada *time.Time
}

// PhotoUpload is one file attached to an occurrence.
type PhotoUpload struct {
	Filename string
	Legenda  string
	Content  io.Reader
}

// IOccurrenceUseCase is the occurrence store plus its state machine. Every
// status change goes through Update (or Create for the initial status).
type IOccurrenceUseCase interface {
	Create(ctx context.Context, in OccurrenceInput) (entities.Occurrence, error)
	Update(ctx context.Context, id int64, in OccurrenceInput) (entities.Occurrence, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (entities.Occurrence, error)
	List(ctx context.Context, f interfaces.OccurrenceFilter) ([]entities.Occurrence, error)
	ListByStatus(ctx context.Context, status string) ([]entities.Occurrence, error)
	ListByPlate(ctx context.Context, plate string) ([]entities.Occurrence, error)
	AddPhotos(ctx context.Context, id int64, uploads []PhotoUpload) (entities.Occurrence, error)
	RegisterArrival(ctx context.Context, id int64, providerID int64) (entities.Occurrence, error)
}

type OccurrenceUseCase struct {
	repo      interfaces.IOccurrenceRepository
	providers interfaces.IProviderRepository
	clients   interfaces.IClientRepository
	storage   interfaces.IPhotoStorage
	now       func() time.Time
}

var _ IOccurrenceUseCase = (*OccurrenceUseCase)(nil)

func NewOccurrenceUseCase(
	repo interfaces.IOccurrenceRepository,
	providers interfaces.IProviderRepository,
	clients interfaces.IClientRepository,
	storage interfaces.IPhotoStorage,
) *OccurrenceUseCase {
	return &OccurrenceUseCase{
		repo:      repo,
		providers: providers,
		clients:   clients,
		storage:   storage,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *OccurrenceUseCase) Create(ctx context.Context, in OccurrenceInput) (entities.Occurrence, error) {
	if in.Tipo == nil || strings.TrimSpace(*in.Tipo) == "" {
		return entities.Occurrence{}, fmt.Errorf("%w: tipo", ErrMissingField)
	}
	if in.Placa1 == nil || strings.TrimSpace(*in.Placa1) == "" {
		return entities.Occurrence{}, fmt.Errorf("%w: placa1", ErrMissingField)
	}
	if in.Cliente == nil && in.ClienteID == nil {
		return entities.Occurrence{}, fmt.Errorf("%w: cliente", ErrMissingField)
	}
	status, err := initialStatus(in.Status)
	if err != nil {
		return entities.Occurrence{}, err
	}

	now := u.now()
	o := entities.Occurrence{Status: entities.OccurrenceStatusAguardando}
	if err := u.applyFields(ctx, &o, in, now); err != nil {
		return entities.Occurrence{}, err
	}
	if o.ClienteID == 0 {
		return entities.Occurrence{}, fmt.Errorf("%w: cliente", ErrMissingField)
	}
	if status == entities.OccurrenceStatusEmAndamento {
		if _, err := applyTransition(&o, status, now); err != nil {
			return entities.Occurrence{}, err
		}
	}

	id, err := u.repo.NextID(ctx)
	if err != nil {
		return entities.Occurrence{}, err
	}
	o.ID = id
	o.Version = 1
	o.CriadoEm = now
	o.AtualizadoEm = now

	created, err := u.repo.Create(ctx, interfaces.OccurrenceWrite{
		Occurrence:      o,
		AcquireProvider: o.PrestadorID,
	})
	if err != nil {
		log.Printf("[occurrence][usecase] create failed id=%d prestador_id=%d err=%v", o.ID, o.PrestadorID, err)
		return entities.Occurrence{}, mapWriteError(err)
	}
	log.Printf("[occurrence][usecase] created id=%d status=%s cliente_id=%d prestador_id=%d", created.ID, created.Status, created.ClienteID, created.PrestadorID)
	return created, nil
}

func (u *OccurrenceUseCase) Update(ctx context.Context, id int64, in OccurrenceInput) (entities.Occurrence, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Occurrence{}, err
	}

	now := u.now()
	next := cloneOccurrence(current)
	if err := u.applyFields(ctx, &next, in, now); err != nil {
		return entities.Occurrence{}, err
	}

	requested := in.Status
	// Assigning a provider to a waiting occurrence is a dispatch.
	if requested == nil && current.Status == entities.OccurrenceStatusAguardando &&
		current.PrestadorID == 0 && next.PrestadorID != 0 {
		dispatch := entities.OccurrenceStatusEmAndamento
		requested = &dispatch
	}

	eff := transitionEffect{From: current.Status, To: current.Status}
	if requested != nil {
		eff, err = applyTransition(&next, *requested, now)
		if err != nil {
			log.Printf("[occurrence][usecase] transition rejected id=%d from=%s to=%s err=%v", id, current.Status, *requested, err)
			return entities.Occurrence{}, err
		}
	}
	if next.Status == entities.OccurrenceStatusEmAndamento && next.PrestadorID == 0 {
		return entities.Occurrence{}, ErrProviderRequired
	}

	saved, err := u.save(ctx, current, next, now)
	if err != nil {
		log.Printf("[occurrence][usecase] update failed id=%d version=%d err=%v", id, current.Version, err)
		return entities.Occurrence{}, err
	}
	if eff.changed() {
		log.Printf("[occurrence][usecase] transition id=%d from=%s to=%s dispatched=%t closed=%t", id, eff.From, eff.To, eff.Dispatched, eff.Closed)
	}
	if eff.RevokedHash {
		log.Printf("[occurrence][usecase] tracking hash revoked on close id=%d", id)
	}
	return saved, nil
}

func (u *OccurrenceUseCase) Delete(ctx context.Context, id int64) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	w := interfaces.OccurrenceWrite{Occurrence: current, ExpectedVersion: current.Version}
	if current.Status.IsTrackable() {
		w.ReleaseProvider = current.PrestadorID
	}
	if err := u.repo.Delete(ctx, w); err != nil {
		log.Printf("[occurrence][usecase] delete failed id=%d err=%v", id, err)
		return mapWriteError(err)
	}
	log.Printf("[occurrence][usecase] deleted id=%d photos=%d", id, len(current.Fotos))

	// Files go after the record is gone; a failure leaves an orphan file,
	// never a half-deleted occurrence.
	if u.storage != nil {
		for _, p := range current.Fotos {
			if err := u.storage.Delete(ctx, p.URL); err != nil {
				log.Printf("[occurrence][usecase] orphaned photo file id=%d url=%s err=%v", id, p.URL, err)
			}
		}
	}
	return nil
}

func (u *OccurrenceUseCase) GetByID(ctx context.Context, id int64) (entities.Occurrence, error) {
	if id <= 0 {
		return entities.Occurrence{}, ErrInvalidOccurrenceID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if o.ID == 0 {
		return entities.Occurrence{}, ErrOccurrenceNotFound
	}
	return o, nil
}

func (u *OccurrenceUseCase) List(ctx context.Context, f interfaces.OccurrenceFilter) ([]entities.Occurrence, error) {
	if f.Status != "" && !f.Status.IsTrackable() && !f.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, f.Status)
	}
	if f.Inicio != nil && f.Fim != nil && f.Fim.Before(*f.Inicio) {
		return nil, fmt.Errorf("%w: fim before inicio", ErrInvalidDateRange)
	}
	return u.repo.List(ctx, f)
}

func (u *OccurrenceUseCase) ListByStatus(ctx context.Context, status string) ([]entities.Occurrence, error) {
	s, ok := entities.ParseOccurrenceStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return u.repo.List(ctx, interfaces.OccurrenceFilter{Status: s})
}

func (u *OccurrenceUseCase) ListByPlate(ctx context.Context, plate string) ([]entities.Occurrence, error) {
	if entities.NormalizePlate(plate) == "" {
		return nil, fmt.Errorf("%w: placa", ErrMissingField)
	}
	return u.repo.List(ctx, interfaces.OccurrenceFilter{Placa: plate})
}

func (u *OccurrenceUseCase) AddPhotos(ctx context.Context, id int64, uploads []PhotoUpload) (entities.Occurrence, error) {
	if len(uploads) == 0 {
		return entities.Occurrence{}, ErrNoPhotos
	}
	if u.storage == nil {
		return entities.Occurrence{}, errors.New("photo storage not configured")
	}
	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Occurrence{}, err
	}

	now := u.now()
	photos := make([]entities.Photo, 0, len(uploads))
	for _, up := range uploads {
		url, err := u.storage.Save(ctx, id, up.Filename, up.Content)
		if err != nil {
			u.discardPhotos(ctx, id, photos)
			return entities.Occurrence{}, err
		}
		photos = append(photos, entities.Photo{
			ID:       photoIDFromURL(url),
			URL:      url,
			Legenda:  strings.TrimSpace(up.Legenda),
			CriadoEm: now,
		})
	}

	for attempt := 1; attempt <= maxPhotoAppendAttempts; attempt++ {
		current, err := u.GetByID(ctx, id)
		if err != nil {
			u.discardPhotos(ctx, id, photos)
			return entities.Occurrence{}, err
		}
		next := cloneOccurrence(current)
		next.Fotos = append(next.Fotos, photos...)

		saved, err := u.save(ctx, current, next, now)
		if err == nil {
			log.Printf("[occurrence][usecase] photos appended id=%d count=%d total=%d", id, len(photos), len(saved.Fotos))
			return saved, nil
		}
		if !errors.Is(err, ErrConcurrentModification) {
			u.discardPhotos(ctx, id, photos)
			return entities.Occurrence{}, err
		}
		log.Printf("[occurrence][usecase] photo append raced id=%d attempt=%d", id, attempt)
	}
	u.discardPhotos(ctx, id, photos)
	return entities.Occurrence{}, ErrConcurrentModification
}

func (u *OccurrenceUseCase) RegisterArrival(ctx context.Context, id int64, providerID int64) (entities.Occurrence, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if providerID == 0 || current.PrestadorID != providerID {
		return entities.Occurrence{}, ErrOccurrenceNotFound
	}
	if !current.Status.IsTrackable() {
		return entities.Occurrence{}, ErrOccurrenceTerminal
	}

	now := u.now()
	next := cloneOccurrence(current)
	if err := applyArrival(&next, now); err != nil {
		return entities.Occurrence{}, err
	}
	saved, err := u.save(ctx, current, next, now)
	if err != nil {
		return entities.Occurrence{}, err
	}
	log.Printf("[occurrence][usecase] arrival recorded id=%d prestador_id=%d", id, providerID)
	return saved, nil
}

// save writes next over current with a version check and whatever provider
// lock changes the two states imply.
func (u *OccurrenceUseCase) save(ctx context.Context, current, next entities.Occurrence, now time.Time) (entities.Occurrence, error) {
	next.Version = current.Version + 1
	next.AtualizadoEm = now

	w := interfaces.OccurrenceWrite{Occurrence: next, ExpectedVersion: current.Version}
	w.ReleaseProvider, w.AcquireProvider = lockDelta(current, next)
	if w.ReleaseProvider != 0 || w.AcquireProvider != 0 {
		log.Printf("[occurrence][usecase] provider lock id=%d release=%d acquire=%d", next.ID, w.ReleaseProvider, w.AcquireProvider)
	}

	saved, err := u.repo.Save(ctx, w)
	if err != nil {
		return entities.Occurrence{}, mapWriteError(err)
	}
	return saved, nil
}

// lockDelta returns which provider assignment must be released and which
// acquired when an occurrence goes from before to after. An occurrence holds
// its provider's lock exactly while it is trackable.
func lockDelta(before, after entities.Occurrence) (release, acquire int64) {
	var held, wants int64
	if before.Status.IsTrackable() {
		held = before.PrestadorID
	}
	if after.Status.IsTrackable() {
		wants = after.PrestadorID
	}
	if held == wants {
		return 0, 0
	}
	return held, wants
}

func (u *OccurrenceUseCase) applyFields(ctx context.Context, o *entities.Occurrence, in OccurrenceInput, now time.Time) error {
	setString(&o.Tipo, in.Tipo)
	setString(&o.Placa1, in.Placa1)
	setString(&o.Placa2, in.Placa2)
	setString(&o.Placa3, in.Placa3)
	setString(&o.Modelo, in.Modelo)
	setString(&o.Cor, in.Cor)
	setString(&o.Descricao, in.Descricao)
	setString(&o.Endereco, in.Endereco)
	setString(&o.Cidade, in.Cidade)
	setString(&o.Estado, in.Estado)
	setString(&o.Operador, in.Operador)

	if in.Placa1 != nil && o.Placa1 == "" {
		return fmt.Errorf("%w: placa1", ErrMissingField)
	}

	if in.Cliente != nil || in.ClienteID != nil {
		c, err := u.resolveClient(ctx, in.ClienteID, in.Cliente)
		if err != nil {
			return err
		}
		o.ClienteID = c.ID
		o.Cliente = c.Nome
	}

	if in.Prestador != nil || in.PrestadorID != nil {
		p, err := u.resolveProvider(ctx, in.PrestadorID, in.Prestador)
		if err != nil {
			return err
		}
		if p.ID != 0 && p.ID != o.PrestadorID && !p.Aprovado {
			return fmt.Errorf("%w: %s", ErrProviderNotApproved, p.Nome)
		}
		o.PrestadorID = p.ID
		o.Prestador = p.Nome
	}

	if in.Despesas.Set {
		if in.Despesas.Value != nil && *in.Despesas.Value < 0 {
			return fmt.Errorf("%w: despesas", ErrInvalidAmount)
		}
		o.Despesas = copyFloat(in.Despesas.Value)
	}
	if in.DespesasDetalhadas != nil {
		items := make([]entities.ExpenseItem, 0, len(*in.DespesasDetalhadas))
		for _, it := range *in.DespesasDetalhadas {
			if strings.TrimSpace(it.Categoria) == "" {
				return fmt.Errorf("%w: despesas_detalhadas.categoria", ErrMissingField)
			}
			if it.Valor < 0 {
				return fmt.Errorf("%w: despesas_detalhadas.valor", ErrInvalidAmount)
			}
			items = append(items, entities.ExpenseItem{Categoria: strings.TrimSpace(it.Categoria), Valor: it.Valor})
		}
		o.DespesasDetalhadas = items
	}
	if in.Km.Set {
		if in.Km.Value != nil && *in.Km.Value < 0 {
			return fmt.Errorf("%w: km", ErrInvalidAmount)
		}
		o.Km = copyFloat(in.Km.Value)
	}

	if in.Resultado != nil {
		if err := applyOutcome(o, strings.TrimSpace(*in.Resultado)); err != nil {
			return err
		}
	}
	if in.Chegada != nil {
		if err := applyArrival(o, *in.Chegada); err != nil {
			return err
		}
	}
	return nil
}

func (u *OccurrenceUseCase) resolveClient(ctx context.Context, id *int64, name *string) (entities.Client, error) {
	var (
		c   entities.Client
		err error
	)
	switch {
	case id != nil && *id != 0:
		c, err = u.clients.GetByID(ctx, *id)
	case name != nil && strings.TrimSpace(*name) != "":
		c, err = u.clients.GetByName(ctx, strings.TrimSpace(*name))
	default:
		return entities.Client{}, fmt.Errorf("%w: cliente", ErrMissingField)
	}
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == 0 {
		return entities.Client{}, ErrUnknownClient
	}
	return c, nil
}

// resolveProvider turns the request's provider reference into a record. An
// explicit empty name with no id unassigns (zero Provider, nil error).
func (u *OccurrenceUseCase) resolveProvider(ctx context.Context, id *int64, name *string) (entities.Provider, error) {
	var (
		p   entities.Provider
		err error
	)
	switch {
	case id != nil && *id != 0:
		p, err = u.providers.GetByID(ctx, *id)
	case name != nil && strings.TrimSpace(*name) != "":
		p, err = u.providers.GetByName(ctx, strings.TrimSpace(*name))
	default:
		return entities.Provider{}, nil
	}
	if err != nil {
		return entities.Provider{}, err
	}
	if p.ID == 0 {
		return entities.Provider{}, ErrUnknownProvider
	}
	return p, nil
}

func (u *OccurrenceUseCase) discardPhotos(ctx context.Context, id int64, photos []entities.Photo) {
	for _, p := range photos {
		if err := u.storage.Delete(ctx, p.URL); err != nil {
			log.Printf("[occurrence][usecase] orphaned photo file id=%d url=%s err=%v", id, p.URL, err)
		}
	}
}

func mapWriteError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrVersionConflict):
		return ErrConcurrentModification
	case errors.Is(err, interfaces.ErrProviderLockHeld):
		return ErrProviderBusy
	}
	return err
}

func cloneOccurrence(o entities.Occurrence) entities.Occurrence {
	cp := o
	if o.Fotos != nil {
		cp.Fotos = append([]entities.Photo(nil), o.Fotos...)
	}
	if o.DespesasDetalhadas != nil {
		cp.DespesasDetalhadas = append([]entities.ExpenseItem(nil), o.DespesasDetalhadas...)
	}
	return cp
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}

func photoIDFromURL(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		url = url[i+1:]
	}
	if i := strings.LastIndex(url, "."); i > 0 {
		url = url[:i]
	}
	return url
}

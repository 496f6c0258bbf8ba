package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOccurrencesTableName = "occurrences"
	defaultAssignmentsTableName = "assignments"

	occurrencesTrackingHashIndex = "tracking_hash-index"
	occurrencesProviderIndex     = "prestador_id-index"
	occurrencesClientIndex       = "cliente_id-index"

	occurrenceSequenceName = "occurrences"
)

type occurrenceItem struct {
	ID     int64  `dynamodbav:"id"`
	Tipo   string `dynamodbav:"tipo"`
	Placa1 string `dynamodbav:"placa1"`
	Placa2 string `dynamodbav:"placa2,omitempty"`
	Placa3 string `dynamodbav:"placa3,omitempty"`
	Modelo string `dynamodbav:"modelo,omitempty"`
	Cor    string `dynamodbav:"cor,omitempty"`

	Cliente     string `dynamodbav:"cliente,omitempty"`
	ClienteID   int64  `dynamodbav:"cliente_id"`
	Prestador   string `dynamodbav:"prestador,omitempty"`
	PrestadorID int64  `dynamodbav:"prestador_id,omitempty"`

	Status string `dynamodbav:"status"`

	Descricao string `dynamodbav:"descricao,omitempty"`
	Endereco  string `dynamodbav:"endereco,omitempty"`
	Cidade    string `dynamodbav:"cidade,omitempty"`
	Estado    string `dynamodbav:"estado,omitempty"`
	Operador  string `dynamodbav:"operador,omitempty"`

	CriadoEm     string `dynamodbav:"criado_em"`
	AtualizadoEm string `dynamodbav:"atualizado_em"`
	Inicio       string `dynamodbav:"inicio,omitempty"`
	Chegada      string `dynamodbav:"chegada,omitempty"`
	Termino      string `dynamodbav:"termino,omitempty"`
	EncerradaEm  string `dynamodbav:"encerrada_em,omitempty"`

	Despesas           *float64      `dynamodbav:"despesas,omitempty"`
	DespesasDetalhadas []expenseItem `dynamodbav:"despesas_detalhadas,omitempty"`
	Km                 *float64      `dynamodbav:"km,omitempty"`

	Resultado string      `dynamodbav:"resultado,omitempty"`
	Fotos     []photoItem `dynamodbav:"fotos,omitempty"`

	// Empty values are omitted so the GSI stays sparse.
	TrackingHash string `dynamodbav:"tracking_hash,omitempty"`

	Version int64 `dynamodbav:"version"`
}

type expenseItem struct {
	Categoria string  `dynamodbav:"categoria"`
	Valor     float64 `dynamodbav:"valor"`
}

type photoItem struct {
	ID       string `dynamodbav:"id"`
	URL      string `dynamodbav:"url"`
	Legenda  string `dynamodbav:"legenda,omitempty"`
	CriadoEm string `dynamodbav:"criado_em"`
}

type assignmentItem struct {
	PrestadorID  int64 `dynamodbav:"prestador_id"`
	OcorrenciaID int64 `dynamodbav:"ocorrencia_id"`
}

// OccurrenceDynamoRepository persists Occurrence entities in DynamoDB.
//
// Table requirements:
//   - occurrences: PK id (number); GSIs tracking_hash-index (tracking_hash),
//     prestador_id-index (prestador_id), cliente_id-index (cliente_id)
//   - assignments: PK prestador_id (number), one row per provider holding a
//     trackable occurrence
//   - counters: PK name (string)
//
// Every write is a TransactWriteItems call so the occurrence row and the
// provider's assignment row change together or not at all.
type OccurrenceDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	assignmentTable string
	ids             sequence
}

var _ interfaces.IOccurrenceRepository = (*OccurrenceDynamoRepository)(nil)

func NewOccurrenceDynamoRepository(ddb *dynamodb.Client) *OccurrenceDynamoRepository {
	return &OccurrenceDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("OCCURRENCES_TABLE", defaultOccurrencesTableName),
		assignmentTable: getenvDefault("ASSIGNMENTS_TABLE", defaultAssignmentsTableName),
		ids:             newSequence(ddb, occurrenceSequenceName),
	}
}

func (r *OccurrenceDynamoRepository) NextID(ctx context.Context) (int64, error) {
	return r.ids.next(ctx)
}

func (r *OccurrenceDynamoRepository) Create(ctx context.Context, w interfaces.OccurrenceWrite) (entities.Occurrence, error) {
	av, err := attributevalue.MarshalMap(toOccurrenceItem(w.Occurrence))
	if err != nil {
		return entities.Occurrence{}, err
	}

	tx := r.newTx()
	tx.add(txItemOccurrence, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})
	if w.AcquireProvider != 0 {
		tx.acquire(w.AcquireProvider, w.Occurrence.ID)
	}
	if err := tx.commit(ctx); err != nil {
		return entities.Occurrence{}, err
	}
	return w.Occurrence, nil
}

func (r *OccurrenceDynamoRepository) Save(ctx context.Context, w interfaces.OccurrenceWrite) (entities.Occurrence, error) {
	av, err := attributevalue.MarshalMap(toOccurrenceItem(w.Occurrence))
	if err != nil {
		return entities.Occurrence{}, err
	}

	tx := r.newTx()
	tx.add(txItemOccurrence, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": numberAV(w.ExpectedVersion),
		},
	}})
	if w.ReleaseProvider != 0 {
		tx.release(w.ReleaseProvider, w.Occurrence.ID)
	}
	if w.AcquireProvider != 0 {
		tx.acquire(w.AcquireProvider, w.Occurrence.ID)
	}
	if err := tx.commit(ctx); err != nil {
		return entities.Occurrence{}, err
	}
	return w.Occurrence, nil
}

func (r *OccurrenceDynamoRepository) Delete(ctx context.Context, w interfaces.OccurrenceWrite) error {
	tx := r.newTx()
	tx.add(txItemOccurrence, types.TransactWriteItem{Delete: &types.Delete{
		TableName:                aws.String(r.tableName),
		Key:                      map[string]types.AttributeValue{"id": numberAV(w.Occurrence.ID)},
		ConditionExpression:      aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": numberAV(w.ExpectedVersion),
		},
	}})
	if w.ReleaseProvider != 0 {
		tx.release(w.ReleaseProvider, w.Occurrence.ID)
	}
	return tx.commit(ctx)
}

func (r *OccurrenceDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Occurrence, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": numberAV(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Occurrence{}, err
	}
	if len(out.Item) == 0 {
		return entities.Occurrence{}, nil
	}

	var it occurrenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Occurrence{}, err
	}
	return fromOccurrenceItem(it), nil
}

// GetByTrackingHash resolves through the GSI and then re-reads the row with
// a consistent read, since index replication may still show a hash that was
// already revoked.
func (r *OccurrenceDynamoRepository) GetByTrackingHash(ctx context.Context, hash string) (entities.Occurrence, error) {
	if hash == "" {
		return entities.Occurrence{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(occurrencesTrackingHashIndex),
		KeyConditionExpression: aws.String("tracking_hash = :h"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":h": &types.AttributeValueMemberS{Value: hash},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Occurrence{}, err
	}
	if len(out.Items) == 0 {
		return entities.Occurrence{}, nil
	}

	var it occurrenceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Occurrence{}, err
	}
	o, err := r.GetByID(ctx, it.ID)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if o.TrackingHash != hash {
		return entities.Occurrence{}, nil
	}
	return o, nil
}

func (r *OccurrenceDynamoRepository) List(ctx context.Context, f interfaces.OccurrenceFilter) ([]entities.Occurrence, error) {
	expr, names, values := occurrenceFilterExpression(f)
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	var items []occurrenceItem
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []occurrenceItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	out := make([]entities.Occurrence, 0, len(items))
	for _, it := range items {
		o := fromOccurrenceItem(it)
		if f.Placa != "" && !o.HasPlate(f.Placa) {
			continue
		}
		out = append(out, o)
	}
	sortOccurrences(out, f.OrderByClosure)
	return out, nil
}

func (r *OccurrenceDynamoRepository) ListByProviderID(ctx context.Context, providerID int64, statuses []entities.OccurrenceStatus) ([]entities.Occurrence, error) {
	return r.queryIndex(ctx, occurrencesProviderIndex, "prestador_id", providerID, statuses)
}

func (r *OccurrenceDynamoRepository) ListByClientID(ctx context.Context, clientID int64, statuses []entities.OccurrenceStatus) ([]entities.Occurrence, error) {
	return r.queryIndex(ctx, occurrencesClientIndex, "cliente_id", clientID, statuses)
}

func (r *OccurrenceDynamoRepository) queryIndex(ctx context.Context, index, key string, id int64, statuses []entities.OccurrenceStatus) ([]entities.Occurrence, error) {
	in := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :k"),
		ExpressionAttributeNames: map[string]string{"#k": key},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": numberAV(id),
		},
	}
	if len(statuses) > 0 {
		expr, values := statusInExpression(statuses)
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, map[string]string{"#status": "status"})
		for k, v := range values {
			in.ExpressionAttributeValues[k] = v
		}
	}

	var out []entities.Occurrence
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it occurrenceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromOccurrenceItem(it))
		}
	}
	sortOccurrences(out, false)
	return out, nil
}

func occurrenceFilterExpression(f interfaces.OccurrenceFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if f.Cliente != "" {
		conds = append(conds, "#cliente = :cliente")
		names["#cliente"] = "cliente"
		values[":cliente"] = &types.AttributeValueMemberS{Value: f.Cliente}
	}
	if f.Prestador != "" {
		conds = append(conds, "#prestador = :prestador")
		names["#prestador"] = "prestador"
		values[":prestador"] = &types.AttributeValueMemberS{Value: f.Prestador}
	}
	if f.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}
	if f.Inicio != nil {
		conds = append(conds, "#criado_em >= :inicio")
		names["#criado_em"] = "criado_em"
		values[":inicio"] = &types.AttributeValueMemberS{Value: formatTime(*f.Inicio)}
	}
	if f.Fim != nil {
		conds = append(conds, "#criado_em <= :fim")
		names["#criado_em"] = "criado_em"
		values[":fim"] = &types.AttributeValueMemberS{Value: formatTime(*f.Fim)}
	}

	expr := ""
	for i, c := range conds {
		if i > 0 {
			expr += " AND "
		}
		expr += c
	}
	return expr, names, values
}

func statusInExpression(statuses []entities.OccurrenceStatus) (string, map[string]types.AttributeValue) {
	values := make(map[string]types.AttributeValue, len(statuses))
	expr := "#status IN ("
	for i, s := range statuses {
		key := ":s" + strconv.Itoa(i)
		if i > 0 {
			expr += ", "
		}
		expr += key
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}
	return expr + ")", values
}

// sortOccurrences orders newest first. By closure, open occurrences (no
// EncerradaEm) go last.
func sortOccurrences(list []entities.Occurrence, byClosure bool) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if byClosure {
			switch {
			case a.EncerradaEm != nil && b.EncerradaEm != nil:
				if !a.EncerradaEm.Equal(*b.EncerradaEm) {
					return a.EncerradaEm.After(*b.EncerradaEm)
				}
			case a.EncerradaEm != nil:
				return true
			case b.EncerradaEm != nil:
				return false
			}
		}
		if !a.CriadoEm.Equal(b.CriadoEm) {
			return a.CriadoEm.After(b.CriadoEm)
		}
		return a.ID > b.ID
	})
}

type txItemKind int

const (
	txItemOccurrence txItemKind = iota
	txItemRelease
	txItemAcquire
)

// occurrenceTx collects the items of one TransactWriteItems call and
// remembers what each one is, so a cancellation can be translated.
type occurrenceTx struct {
	r     *OccurrenceDynamoRepository
	items []types.TransactWriteItem
	kinds []txItemKind
}

func (r *OccurrenceDynamoRepository) newTx() *occurrenceTx {
	return &occurrenceTx{r: r}
}

func (tx *occurrenceTx) add(kind txItemKind, item types.TransactWriteItem) {
	tx.items = append(tx.items, item)
	tx.kinds = append(tx.kinds, kind)
}

// release drops the provider's assignment row if it still points at this
// occurrence (or is already gone).
func (tx *occurrenceTx) release(providerID, occurrenceID int64) {
	tx.add(txItemRelease, types.TransactWriteItem{Delete: &types.Delete{
		TableName:           aws.String(tx.r.assignmentTable),
		Key:                 map[string]types.AttributeValue{"prestador_id": numberAV(providerID)},
		ConditionExpression: aws.String("attribute_not_exists(prestador_id) OR ocorrencia_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": numberAV(occurrenceID),
		},
	}})
}

// acquire claims the provider for this occurrence. Re-claiming a row that
// already points here succeeds.
func (tx *occurrenceTx) acquire(providerID, occurrenceID int64) {
	av, _ := attributevalue.MarshalMap(assignmentItem{PrestadorID: providerID, OcorrenciaID: occurrenceID})
	tx.add(txItemAcquire, types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(tx.r.assignmentTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(prestador_id) OR ocorrencia_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": numberAV(occurrenceID),
		},
	}})
}

func (tx *occurrenceTx) commit(ctx context.Context) error {
	_, err := tx.r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: tx.items,
	})
	if err == nil {
		return nil
	}
	return translateTxError(err, tx.kinds)
}

func translateTxError(err error, kinds []txItemKind) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for i, reason := range tce.CancellationReasons {
			code := aws.ToString(reason.Code)
			switch code {
			case "ConditionalCheckFailed":
				if i < len(kinds) && kinds[i] == txItemAcquire {
					return interfaces.ErrProviderLockHeld
				}
				return interfaces.ErrVersionConflict
			case "TransactionConflict":
				return interfaces.ErrVersionConflict
			}
		}
		return err
	}
	if isConditionalCheckFailed(err) {
		return interfaces.ErrVersionConflict
	}
	return err
}

func toOccurrenceItem(o entities.Occurrence) occurrenceItem {
	it := occurrenceItem{
		ID:           o.ID,
		Tipo:         o.Tipo,
		Placa1:       o.Placa1,
		Placa2:       o.Placa2,
		Placa3:       o.Placa3,
		Modelo:       o.Modelo,
		Cor:          o.Cor,
		Cliente:      o.Cliente,
		ClienteID:    o.ClienteID,
		Prestador:    o.Prestador,
		PrestadorID:  o.PrestadorID,
		Status:       string(o.Status),
		Descricao:    o.Descricao,
		Endereco:     o.Endereco,
		Cidade:       o.Cidade,
		Estado:       o.Estado,
		Operador:     o.Operador,
		CriadoEm:     formatTime(o.CriadoEm),
		AtualizadoEm: formatTime(o.AtualizadoEm),
		Inicio:       formatTimePtr(o.Inicio),
		Chegada:      formatTimePtr(o.Chegada),
		Termino:      formatTimePtr(o.Termino),
		EncerradaEm:  formatTimePtr(o.EncerradaEm),
		Despesas:     o.Despesas,
		Km:           o.Km,
		Resultado:    o.Resultado,
		TrackingHash: o.TrackingHash,
		Version:      o.Version,
	}
	for _, e := range o.DespesasDetalhadas {
		it.DespesasDetalhadas = append(it.DespesasDetalhadas, expenseItem{Categoria: e.Categoria, Valor: e.Valor})
	}
	for _, p := range o.Fotos {
		it.Fotos = append(it.Fotos, photoItem{ID: p.ID, URL: p.URL, Legenda: p.Legenda, CriadoEm: formatTime(p.CriadoEm)})
	}
	return it
}

func fromOccurrenceItem(it occurrenceItem) entities.Occurrence {
	o := entities.Occurrence{
		ID:           it.ID,
		Tipo:         it.Tipo,
		Placa1:       it.Placa1,
		Placa2:       it.Placa2,
		Placa3:       it.Placa3,
		Modelo:       it.Modelo,
		Cor:          it.Cor,
		Cliente:      it.Cliente,
		ClienteID:    it.ClienteID,
		Prestador:    it.Prestador,
		PrestadorID:  it.PrestadorID,
		Status:       entities.OccurrenceStatus(it.Status),
		Descricao:    it.Descricao,
		Endereco:     it.Endereco,
		Cidade:       it.Cidade,
		Estado:       it.Estado,
		Operador:     it.Operador,
		CriadoEm:     parseTime(it.CriadoEm),
		AtualizadoEm: parseTime(it.AtualizadoEm),
		Inicio:       parseTimePtr(it.Inicio),
		Chegada:      parseTimePtr(it.Chegada),
		Termino:      parseTimePtr(it.Termino),
		EncerradaEm:  parseTimePtr(it.EncerradaEm),
		Despesas:     it.Despesas,
		Km:           it.Km,
		Resultado:    it.Resultado,
		TrackingHash: it.TrackingHash,
		Version:      it.Version,
	}
	for _, e := range it.DespesasDetalhadas {
		o.DespesasDetalhadas = append(o.DespesasDetalhadas, entities.ExpenseItem{Categoria: e.Categoria, Valor: e.Valor})
	}
	for _, p := range it.Fotos {
		o.Fotos = append(o.Fotos, entities.Photo{ID: p.ID, URL: p.URL, Legenda: p.Legenda, CriadoEm: parseTime(p.CriadoEm)})
	}
	return o
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
)

// ErrOrderNotFound is returned when no order matches the given ID.
var ErrOrderNotFound = errors.New("order not found")

// OrderLineItemDocument is one cart line as stored in MongoDB.
// Money is stored as decimal strings so amounts round-trip exactly.
type OrderLineItemDocument struct {
	ProductID            string `bson:"product_id"`
	Name                 string `bson:"name"`
	Quantity             int    `bson:"quantity"`
	UnitPrice            string `bson:"unit_price"`
	PreparationTimeHours int    `bson:"preparation_time_hours"`
}

// OrderDocument is the orders collection schema. The confirmed postal code,
// fee, and delivery window are plain fields on the record.
type OrderDocument struct {
	ID           primitive.ObjectID      `bson:"_id,omitempty"`
	Number       string                  `bson:"number"`
	Contact      model.ContactInfo       `bson:"contact"`
	Items        []OrderLineItemDocument `bson:"items"`
	Subtotal     string                  `bson:"subtotal"`
	DeliveryType string                  `bson:"delivery_type"`
	PostalCode   string                  `bson:"postal_code,omitempty"`
	ZoneName     string                  `bson:"zone_name,omitempty"`
	DeliveryFee  string                  `bson:"delivery_fee"`
	WindowDate   string                  `bson:"window_date"`
	WindowStart  string                  `bson:"window_start"`
	WindowEnd    string                  `bson:"window_end"`
	Status       string                  `bson:"status"`
	CreatedAt    time.Time               `bson:"created_at"`
	UpdatedAt    time.Time               `bson:"updated_at"`
}

// OrderDocumentFromModel converts a domain order to its storage form.
func OrderDocumentFromModel(order *model.Order) *OrderDocument {
	items := make([]OrderLineItemDocument, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderLineItemDocument{
			ProductID:            item.ProductID,
			Name:                 item.Name,
			Quantity:             item.Quantity,
			UnitPrice:            item.UnitPrice.String(),
			PreparationTimeHours: item.PreparationTimeHours,
		}
	}

	return &OrderDocument{
		Number:       order.Number,
		Contact:      order.Contact,
		Items:        items,
		Subtotal:     order.Subtotal.String(),
		DeliveryType: string(order.DeliveryType),
		PostalCode:   order.PostalCode,
		ZoneName:     order.ZoneName,
		DeliveryFee:  order.DeliveryFee.String(),
		WindowDate:   order.Window.Date,
		WindowStart:  order.Window.StartTime,
		WindowEnd:    order.Window.EndTime,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ToModel converts the storage form back to a domain order.
func (d *OrderDocument) ToModel() (*model.Order, error) {
	subtotal, err := decimal.NewFromString(d.Subtotal)
	if err != nil {
		return nil, err
	}
	fee, err := decimal.NewFromString(d.DeliveryFee)
	if err != nil {
		return nil, err
	}

	items := make([]model.CartLineItem, len(d.Items))
	for i, item := range d.Items {
		unitPrice, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, err
		}
		items[i] = model.CartLineItem{
			ProductID:            item.ProductID,
			Name:                 item.Name,
			Quantity:             item.Quantity,
			UnitPrice:            unitPrice,
			PreparationTimeHours: item.PreparationTimeHours,
		}
	}

	return &model.Order{
		ID:           d.ID.Hex(),
		Number:       d.Number,
		Contact:      d.Contact,
		Items:        items,
		Subtotal:     subtotal,
		DeliveryType: model.DeliveryType(d.DeliveryType),
		PostalCode:   d.PostalCode,
		ZoneName:     d.ZoneName,
		DeliveryFee:  fee,
		Window: model.DeliveryWindowSelection{
			Date:      d.WindowDate,
			StartTime: d.WindowStart,
			EndTime:   d.WindowEnd,
		},
		Status:    model.OrderStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// OrdersRepository provides order persistence over MongoDB.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates an orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{collection: db.Orders}
}

// Create inserts a new order document and fills in its generated ID.
func (r *OrdersRepository) Create(ctx context.Context, doc *OrderDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// GetByID returns one order by its hex ObjectID.
func (r *OrdersRepository) GetByID(ctx context.Context, id string) (*OrderDocument, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	var doc OrderDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns orders sorted newest first, up to limit (default 50).
func (r *OrdersRepository) List(ctx context.Context, limit int) ([]*OrderDocument, error) {
	if limit <= 0 {
		limit = 50
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateStatus transitions the order's status and returns the updated
// document.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, id string, status string) (*OrderDocument, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc OrderDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

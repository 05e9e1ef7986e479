package paradesk

import "encoding/xml"

// CustomFieldDataType is the semantic subtype of a custom field. The schema
// endpoint reports most of these directly; the phone/email/URL subtypes are
// only discoverable through validation probing (SchemaWithCustomFieldTypes).
type CustomFieldDataType string

// Custom field data types.
const (
	FieldTypeString             CustomFieldDataType = "string"
	FieldTypeInt                CustomFieldDataType = "int"
	FieldTypeFloat              CustomFieldDataType = "float"
	FieldTypeBoolean            CustomFieldDataType = "boolean"
	FieldTypeDate               CustomFieldDataType = "date"
	FieldTypeOption             CustomFieldDataType = "option"
	FieldTypeEmail              CustomFieldDataType = "email"
	FieldTypeUsPhone            CustomFieldDataType = "usphone"
	FieldTypeInternationalPhone CustomFieldDataType = "internationalphone"
	FieldTypeURL                CustomFieldDataType = "url"
)

// CustomField is one custom field definition or value on a module object.
type CustomField struct {
	ID          int64               `xml:"id,attr"`
	DisplayName string              `xml:"display-name,attr"`
	DataType    CustomFieldDataType `xml:"data-type,attr"`
	Required    bool                `xml:"required,attr"`
	Editable    bool                `xml:"editable,attr"`
	MaxLength   int                 `xml:"max-length,attr,omitempty"`
	Value       string              `xml:",chardata"`
}

// Customer is a Paradesk customer record.
type Customer struct {
	XMLName      xml.Name      `xml:"customer"`
	ID           int64         `xml:"id,attr,omitempty"`
	FirstName    string        `xml:"First_Name,omitempty"`
	LastName     string        `xml:"Last_Name,omitempty"`
	Email        string        `xml:"Email,omitempty"`
	UserName     string        `xml:"User_Name,omitempty"`
	Password     string        `xml:"Password,omitempty"`
	Status       *Status       `xml:"Status,omitempty"`
	Account      *AccountRef   `xml:"Account,omitempty"`
	Sla          *SlaRef       `xml:"Sla,omitempty"`
	DateCreated  string        `xml:"Date_Created,omitempty"`
	DateUpdated  string        `xml:"Date_Updated,omitempty"`
	CustomFields []CustomField `xml:"Custom_Field"`
}

// Account is a Paradesk account record.
type Account struct {
	XMLName      xml.Name      `xml:"account"`
	ID           int64         `xml:"id,attr,omitempty"`
	AccountName  string        `xml:"Account_Name,omitempty"`
	OwnedBy      *CsrRef       `xml:"Owned_By,omitempty"`
	Sla          *SlaRef       `xml:"Sla,omitempty"`
	DateCreated  string        `xml:"Date_Created,omitempty"`
	CustomFields []CustomField `xml:"Custom_Field"`
}

// Ticket is a Paradesk ticket record.
type Ticket struct {
	XMLName       xml.Name      `xml:"ticket"`
	ID            int64         `xml:"id,attr,omitempty"`
	TicketNumber  string        `xml:"Ticket_Number,omitempty"`
	Summary       string        `xml:"Ticket_Summary,omitempty"`
	Status        *Status       `xml:"Ticket_Status,omitempty"`
	Customer      *CustomerRef  `xml:"Ticket_Customer,omitempty"`
	AssignedTo    *CsrRef       `xml:"Assigned_To,omitempty"`
	Queue         *QueueRef     `xml:"Ticket_Queue,omitempty"`
	Product       *ProductRef   `xml:"Ticket_Product,omitempty"`
	DateCreated   string        `xml:"Date_Created,omitempty"`
	DateUpdated   string        `xml:"Date_Updated,omitempty"`
	CustomFields  []CustomField `xml:"Custom_Field"`
	ActionHistory []Action      `xml:"Actions>Action"`
}

// Action is one entry of a ticket's action history.
type Action struct {
	ID        int64  `xml:"id,attr,omitempty"`
	Name      string `xml:"Name,omitempty"`
	Comment   string `xml:"Comment,omitempty"`
	Date      string `xml:"Date,omitempty"`
	Performer string `xml:"Performer,omitempty"`
}

// Product is a Paradesk product record.
type Product struct {
	XMLName      xml.Name      `xml:"product"`
	ID           int64         `xml:"id,attr,omitempty"`
	Name         string        `xml:"Name,omitempty"`
	SKU          string        `xml:"Sku,omitempty"`
	Price        string        `xml:"Price,omitempty"`
	Visible      bool          `xml:"Visible,omitempty"`
	DateCreated  string        `xml:"Date_Created,omitempty"`
	CustomFields []CustomField `xml:"Custom_Field"`
}

// Asset is a Paradesk asset record.
type Asset struct {
	XMLName      xml.Name      `xml:"asset"`
	ID           int64         `xml:"id,attr,omitempty"`
	Name         string        `xml:"Name,omitempty"`
	SerialNumber string        `xml:"Serial_Number,omitempty"`
	Status       *Status       `xml:"Status,omitempty"`
	Account      *AccountRef   `xml:"Account_Owner,omitempty"`
	Customer     *CustomerRef  `xml:"Customer_Owner,omitempty"`
	Product      *ProductRef   `xml:"Product,omitempty"`
	DateCreated  string        `xml:"Date_Created,omitempty"`
	CustomFields []CustomField `xml:"Custom_Field"`
}

// Sla is a service-level agreement entity. SLAs are read-only through the
// API: detail, list, and schema calls only.
type Sla struct {
	XMLName xml.Name `xml:"sla"`
	ID      int64    `xml:"id,attr,omitempty"`
	Name    string   `xml:"Name,omitempty"`
}

// Article is a knowledge-base article record.
type Article struct {
	XMLName        xml.Name      `xml:"article"`
	ID             int64         `xml:"id,attr,omitempty"`
	Question       string        `xml:"Question,omitempty"`
	Answer         string        `xml:"Answer,omitempty"`
	Published      bool          `xml:"Published,omitempty"`
	Rating         int           `xml:"Rating,omitempty"`
	TimesViewed    int           `xml:"Times_Viewed,omitempty"`
	ExpirationDate string        `xml:"Expiration_Date,omitempty"`
	Folders        []FolderRef   `xml:"Folders>Folder"`
	DateCreated    string        `xml:"Date_Created,omitempty"`
	DateUpdated    string        `xml:"Date_Updated,omitempty"`
	CustomFields   []CustomField `xml:"Custom_Field"`
}

// ArticleFolder is a knowledge-base folder. Folders carry no custom
// fields, so there is no schema probing for them.
type ArticleFolder struct {
	XMLName      xml.Name   `xml:"articleFolder"`
	ID           int64      `xml:"id,attr,omitempty"`
	Name         string     `xml:"Name,omitempty"`
	Description  string     `xml:"Description,omitempty"`
	IsPrivate    bool       `xml:"Is_Private,omitempty"`
	ParentFolder *FolderRef `xml:"Parent_Folder,omitempty"`
	DateUpdated  string     `xml:"Date_Updated,omitempty"`
}

// Attachment describes an uploaded file as the server records it.
type Attachment struct {
	XMLName xml.Name `xml:"attachment"`
	GUID    string   `xml:"guid,attr,omitempty"`
	Name    string   `xml:"Name,omitempty"`
	Href    string   `xml:"href,attr,omitempty"`
}

// Status is a named status reference.
type Status struct {
	ID   int64  `xml:"id,attr,omitempty"`
	Name string `xml:"Name,omitempty"`
}

// Reference types: second-level objects carried by id and display name
// inside a first-level record.
type (
	// AccountRef points at an account.
	AccountRef struct {
		ID   int64  `xml:"id,attr,omitempty"`
		Name string `xml:"Account_Name,omitempty"`
	}

	// CustomerRef points at a customer.
	CustomerRef struct {
		ID   int64  `xml:"id,attr,omitempty"`
		Name string `xml:"Full_Name,omitempty"`
	}

	// CsrRef points at a service representative.
	CsrRef struct {
		ID   int64  `xml:"id,attr,omitempty"`
		Name string `xml:"Full_Name,omitempty"`
	}

	// ProductRef points at a product.
	ProductRef struct {
		ID   int64  `xml:"id,attr,omitempty"`
		Name string `xml:"Name,omitempty"`
	}

	// QueueRef points at a ticket queue.
	QueueRef struct {
		ID   int64  `xml:"id,attr,omitempty"`
		Name string `xml:"Name,omitempty"`
	}

	// SlaRef points at an SLA.
	SlaRef struct {
		ID   int64  `xml:"id,attr,omitempty"`
		Name string `xml:"Name,omitempty"`
	}

	// FolderRef points at an article folder.
	FolderRef struct {
		ID   int64  `xml:"id,attr,omitempty"`
		Name string `xml:"Name,omitempty"`
	}
)

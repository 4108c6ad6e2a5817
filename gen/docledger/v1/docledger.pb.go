// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docledger/v1/docledger.proto

package docledgerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Type          string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Date          string                 `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	Amount        float64                `protobuf:"fixed64,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Currency      string                 `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	Vendor        string                 `protobuf:"bytes,7,opt,name=vendor,proto3" json:"vendor,omitempty"`
	DocNumber     string                 `protobuf:"bytes,8,opt,name=doc_number,json=docNumber,proto3" json:"doc_number,omitempty"`
	FileName      string                 `protobuf:"bytes,9,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileMime      string                 `protobuf:"bytes,10,opt,name=file_mime,json=fileMime,proto3" json:"file_mime,omitempty"`
	FileSize      int64                  `protobuf:"varint,11,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	OcrStatus     string                 `protobuf:"bytes,12,opt,name=ocr_status,json=ocrStatus,proto3" json:"ocr_status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Document) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Document) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Document) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Document) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Document) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *Document) GetDocNumber() string {
	if x != nil {
		return x.DocNumber
	}
	return ""
}

func (x *Document) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Document) GetFileMime() string {
	if x != nil {
		return x.FileMime
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetOcrStatus() string {
	if x != nil {
		return x.OcrStatus
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	Type          string                 `protobuf:"bytes,5,opt,name=type,proto3" json:"type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UploadDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadDocumentRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	OcrText       string                 `protobuf:"bytes,2,opt,name=ocr_text,json=ocrText,proto3" json:"ocr_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetOcrText() string {
	if x != nil {
		return x.OcrText
	}
	return ""
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{5}
}

func (x *ListDocumentsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListDocumentsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListDocumentsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type RetryExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryExtractionRequest) Reset() {
	*x = RetryExtractionRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryExtractionRequest) ProtoMessage() {}

func (x *RetryExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryExtractionRequest.ProtoReflect.Descriptor instead.
func (*RetryExtractionRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{7}
}

func (x *RetryExtractionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *RetryExtractionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type RetryExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryExtractionResponse) Reset() {
	*x = RetryExtractionResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryExtractionResponse) ProtoMessage() {}

func (x *RetryExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryExtractionResponse.ProtoReflect.Descriptor instead.
func (*RetryExtractionResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{8}
}

func (x *RetryExtractionResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ProcessNextJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessNextJobRequest) Reset() {
	*x = ProcessNextJobRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessNextJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessNextJobRequest) ProtoMessage() {}

func (x *ProcessNextJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessNextJobRequest.ProtoReflect.Descriptor instead.
func (*ProcessNextJobRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{9}
}

type ProcessNextJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     bool                   `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessNextJobResponse) Reset() {
	*x = ProcessNextJobResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessNextJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessNextJobResponse) ProtoMessage() {}

func (x *ProcessNextJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessNextJobResponse.ProtoReflect.Descriptor instead.
func (*ProcessNextJobResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{10}
}

func (x *ProcessNextJobResponse) GetProcessed() bool {
	if x != nil {
		return x.Processed
	}
	return false
}

var File_docledger_v1_docledger_proto protoreflect.FileDescriptor

const file_docledger_v1_docledger_proto_rawDesc = "" +
	"\n" +
	"\x1cdocledger/v1/docledger.proto\x12\fdocledger.v1\"\xdb\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\x01R\x06amount\x12\x1a\n" +
	"\bcurrency\x18\x06 \x01(\tR\bcurrency\x12\x16\n" +
	"\x06vendor\x18\a \x01(\tR\x06vendor\x12\x1d\n" +
	"\n" +
	"doc_number\x18\b \x01(\tR\tdocNumber\x12\x1b\n" +
	"\tfile_name\x18\t \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_mime\x18\n" +
	" \x01(\tR\bfileMime\x12\x1b\n" +
	"\tfile_size\x18\v \x01(\x03R\bfileSize\x12\x1d\n" +
	"\n" +
	"ocr_status\x18\f \x01(\tR\tocrStatus\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\"\x9e\x01\n" +
	"\x15UploadDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\x12\x12\n" +
	"\x04type\x18\x05 \x01(\tR\x04type\"L\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docledger.v1.DocumentR\bdocument\"N\n" +
	"\x12GetDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\"d\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docledger.v1.DocumentR\bdocument\x12\x19\n" +
	"\bocr_text\x18\x02 \x01(\tR\aocrText\"e\n" +
	"\x14ListDocumentsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.docledger.v1.DocumentR\tdocuments\"R\n" +
	"\x16RetryExtractionRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\"M\n" +
	"\x17RetryExtractionResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docledger.v1.DocumentR\bdocument\"\x17\n" +
	"\x15ProcessNextJobRequest\"6\n" +
	"\x16ProcessNextJobResponse\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\bR\tprocessed2\xda\x03\n" +
	"\x10DocumentsService\x12[\n" +
	"\x0eUploadDocument\x12#.docledger.v1.UploadDocumentRequest\x1a$.docledger.v1.UploadDocumentResponse\x12R\n" +
	"\vGetDocument\x12 .docledger.v1.GetDocumentRequest\x1a!.docledger.v1.GetDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".docledger.v1.ListDocumentsRequest\x1a#.docledger.v1.ListDocumentsResponse\x12^\n" +
	"\x0fRetryExtraction\x12$.docledger.v1.RetryExtractionRequest\x1a%.docledger.v1.RetryExtractionResponse\x12[\n" +
	"\x0eProcessNextJob\x12#.docledger.v1.ProcessNextJobRequest\x1a$.docledger.v1.ProcessNextJobResponseB=Z;github.com/docledger/docledger/gen/docledger/v1;docledgerv1b\x06proto3"

var (
	file_docledger_v1_docledger_proto_rawDescOnce sync.Once
	file_docledger_v1_docledger_proto_rawDescData []byte
)

func file_docledger_v1_docledger_proto_rawDescGZIP() []byte {
	file_docledger_v1_docledger_proto_rawDescOnce.Do(func() {
		file_docledger_v1_docledger_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docledger_v1_docledger_proto_rawDesc), len(file_docledger_v1_docledger_proto_rawDesc)))
	})
	return file_docledger_v1_docledger_proto_rawDescData
}

var file_docledger_v1_docledger_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_docledger_v1_docledger_proto_goTypes = []any{
	(*Document)(nil),                // 0: docledger.v1.Document
	(*UploadDocumentRequest)(nil),   // 1: docledger.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),  // 2: docledger.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),      // 3: docledger.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),     // 4: docledger.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),    // 5: docledger.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),   // 6: docledger.v1.ListDocumentsResponse
	(*RetryExtractionRequest)(nil),  // 7: docledger.v1.RetryExtractionRequest
	(*RetryExtractionResponse)(nil), // 8: docledger.v1.RetryExtractionResponse
	(*ProcessNextJobRequest)(nil),   // 9: docledger.v1.ProcessNextJobRequest
	(*ProcessNextJobResponse)(nil),  // 10: docledger.v1.ProcessNextJobResponse
}
var file_docledger_v1_docledger_proto_depIdxs = []int32{
	0,  // 0: docledger.v1.UploadDocumentResponse.document:type_name -> docledger.v1.Document
	0,  // 1: docledger.v1.GetDocumentResponse.document:type_name -> docledger.v1.Document
	0,  // 2: docledger.v1.ListDocumentsResponse.documents:type_name -> docledger.v1.Document
	0,  // 3: docledger.v1.RetryExtractionResponse.document:type_name -> docledger.v1.Document
	1,  // 4: docledger.v1.DocumentsService.UploadDocument:input_type -> docledger.v1.UploadDocumentRequest
	3,  // 5: docledger.v1.DocumentsService.GetDocument:input_type -> docledger.v1.GetDocumentRequest
	5,  // 6: docledger.v1.DocumentsService.ListDocuments:input_type -> docledger.v1.ListDocumentsRequest
	7,  // 7: docledger.v1.DocumentsService.RetryExtraction:input_type -> docledger.v1.RetryExtractionRequest
	9,  // 8: docledger.v1.DocumentsService.ProcessNextJob:input_type -> docledger.v1.ProcessNextJobRequest
	2,  // 9: docledger.v1.DocumentsService.UploadDocument:output_type -> docledger.v1.UploadDocumentResponse
	4,  // 10: docledger.v1.DocumentsService.GetDocument:output_type -> docledger.v1.GetDocumentResponse
	6,  // 11: docledger.v1.DocumentsService.ListDocuments:output_type -> docledger.v1.ListDocumentsResponse
	8,  // 12: docledger.v1.DocumentsService.RetryExtraction:output_type -> docledger.v1.RetryExtractionResponse
	10, // 13: docledger.v1.DocumentsService.ProcessNextJob:output_type -> docledger.v1.ProcessNextJobResponse
	9,  // [9:14] is the sub-list for method output_type
	4,  // [4:9] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_docledger_v1_docledger_proto_init() }
func file_docledger_v1_docledger_proto_init() {
	if File_docledger_v1_docledger_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docledger_v1_docledger_proto_rawDesc), len(file_docledger_v1_docledger_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docledger_v1_docledger_proto_goTypes,
		DependencyIndexes: file_docledger_v1_docledger_proto_depIdxs,
		MessageInfos:      file_docledger_v1_docledger_proto_msgTypes,
	}.Build()
	File_docledger_v1_docledger_proto = out.File
	file_docledger_v1_docledger_proto_goTypes = nil
	file_docledger_v1_docledger_proto_depIdxs = nil
}

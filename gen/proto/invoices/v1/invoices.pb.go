// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

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

type Profile struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email            string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Name             string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	SubscriptionTier string                 `protobuf:"bytes,4,opt,name=subscription_tier,json=subscriptionTier,proto3" json:"subscription_tier,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetSubscriptionTier() string {
	if x != nil {
		return x.SubscriptionTier
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateProfileRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Email           string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,3,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *CreateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type GetProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileRequest) Reset() {
	*x = GetProfileRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileRequest) ProtoMessage() {}

func (x *GetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileRequest.ProtoReflect.Descriptor instead.
func (*GetProfileRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *GetProfileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type GetProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileResponse) Reset() {
	*x = GetProfileResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileResponse) ProtoMessage() {}

func (x *GetProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileResponse.ProtoReflect.Descriptor instead.
func (*GetProfileResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *GetProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type FieldMapping struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId         string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FieldName         string                 `protobuf:"bytes,3,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	ValidationKind    string                 `protobuf:"bytes,4,opt,name=validation_kind,json=validationKind,proto3" json:"validation_kind,omitempty"`
	ValidationPattern string                 `protobuf:"bytes,5,opt,name=validation_pattern,json=validationPattern,proto3" json:"validation_pattern,omitempty"`
	ValidationMessage string                 `protobuf:"bytes,6,opt,name=validation_message,json=validationMessage,proto3" json:"validation_message,omitempty"`
	Required          bool                   `protobuf:"varint,7,opt,name=required,proto3" json:"required,omitempty"`
	CustomRulesJson   string                 `protobuf:"bytes,8,opt,name=custom_rules_json,json=customRulesJson,proto3" json:"custom_rules_json,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *FieldMapping) Reset() {
	*x = FieldMapping{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldMapping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldMapping) ProtoMessage() {}

func (x *FieldMapping) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldMapping.ProtoReflect.Descriptor instead.
func (*FieldMapping) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *FieldMapping) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FieldMapping) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *FieldMapping) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *FieldMapping) GetValidationKind() string {
	if x != nil {
		return x.ValidationKind
	}
	return ""
}

func (x *FieldMapping) GetValidationPattern() string {
	if x != nil {
		return x.ValidationPattern
	}
	return ""
}

func (x *FieldMapping) GetValidationMessage() string {
	if x != nil {
		return x.ValidationMessage
	}
	return ""
}

func (x *FieldMapping) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *FieldMapping) GetCustomRulesJson() string {
	if x != nil {
		return x.CustomRulesJson
	}
	return ""
}

func (x *FieldMapping) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *FieldMapping) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateFieldMappingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FieldName     string                 `protobuf:"bytes,2,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFieldMappingRequest) Reset() {
	*x = CreateFieldMappingRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFieldMappingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFieldMappingRequest) ProtoMessage() {}

func (x *CreateFieldMappingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFieldMappingRequest.ProtoReflect.Descriptor instead.
func (*CreateFieldMappingRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *CreateFieldMappingRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *CreateFieldMappingRequest) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

type CreateFieldMappingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mapping       *FieldMapping          `protobuf:"bytes,1,opt,name=mapping,proto3" json:"mapping,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFieldMappingResponse) Reset() {
	*x = CreateFieldMappingResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFieldMappingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFieldMappingResponse) ProtoMessage() {}

func (x *CreateFieldMappingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFieldMappingResponse.ProtoReflect.Descriptor instead.
func (*CreateFieldMappingResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

func (x *CreateFieldMappingResponse) GetMapping() *FieldMapping {
	if x != nil {
		return x.Mapping
	}
	return nil
}

type UpdateFieldMappingRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ProfileId         string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	MappingId         string                 `protobuf:"bytes,2,opt,name=mapping_id,json=mappingId,proto3" json:"mapping_id,omitempty"`
	ValidationKind    *string                `protobuf:"bytes,3,opt,name=validation_kind,json=validationKind,proto3,oneof" json:"validation_kind,omitempty"`
	ValidationPattern *string                `protobuf:"bytes,4,opt,name=validation_pattern,json=validationPattern,proto3,oneof" json:"validation_pattern,omitempty"`
	ValidationMessage *string                `protobuf:"bytes,5,opt,name=validation_message,json=validationMessage,proto3,oneof" json:"validation_message,omitempty"`
	Required          *bool                  `protobuf:"varint,6,opt,name=required,proto3,oneof" json:"required,omitempty"`
	CustomRulesJson   *string                `protobuf:"bytes,7,opt,name=custom_rules_json,json=customRulesJson,proto3,oneof" json:"custom_rules_json,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UpdateFieldMappingRequest) Reset() {
	*x = UpdateFieldMappingRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldMappingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldMappingRequest) ProtoMessage() {}

func (x *UpdateFieldMappingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldMappingRequest.ProtoReflect.Descriptor instead.
func (*UpdateFieldMappingRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateFieldMappingRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *UpdateFieldMappingRequest) GetMappingId() string {
	if x != nil {
		return x.MappingId
	}
	return ""
}

func (x *UpdateFieldMappingRequest) GetValidationKind() string {
	if x != nil && x.ValidationKind != nil {
		return *x.ValidationKind
	}
	return ""
}

func (x *UpdateFieldMappingRequest) GetValidationPattern() string {
	if x != nil && x.ValidationPattern != nil {
		return *x.ValidationPattern
	}
	return ""
}

func (x *UpdateFieldMappingRequest) GetValidationMessage() string {
	if x != nil && x.ValidationMessage != nil {
		return *x.ValidationMessage
	}
	return ""
}

func (x *UpdateFieldMappingRequest) GetRequired() bool {
	if x != nil && x.Required != nil {
		return *x.Required
	}
	return false
}

func (x *UpdateFieldMappingRequest) GetCustomRulesJson() string {
	if x != nil && x.CustomRulesJson != nil {
		return *x.CustomRulesJson
	}
	return ""
}

type UpdateFieldMappingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mapping       *FieldMapping          `protobuf:"bytes,1,opt,name=mapping,proto3" json:"mapping,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldMappingResponse) Reset() {
	*x = UpdateFieldMappingResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldMappingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldMappingResponse) ProtoMessage() {}

func (x *UpdateFieldMappingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldMappingResponse.ProtoReflect.Descriptor instead.
func (*UpdateFieldMappingResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateFieldMappingResponse) GetMapping() *FieldMapping {
	if x != nil {
		return x.Mapping
	}
	return nil
}

type DeleteFieldMappingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	MappingId     string                 `protobuf:"bytes,2,opt,name=mapping_id,json=mappingId,proto3" json:"mapping_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFieldMappingRequest) Reset() {
	*x = DeleteFieldMappingRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFieldMappingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFieldMappingRequest) ProtoMessage() {}

func (x *DeleteFieldMappingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFieldMappingRequest.ProtoReflect.Descriptor instead.
func (*DeleteFieldMappingRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteFieldMappingRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *DeleteFieldMappingRequest) GetMappingId() string {
	if x != nil {
		return x.MappingId
	}
	return ""
}

type DeleteFieldMappingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFieldMappingResponse) Reset() {
	*x = DeleteFieldMappingResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFieldMappingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFieldMappingResponse) ProtoMessage() {}

func (x *DeleteFieldMappingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFieldMappingResponse.ProtoReflect.Descriptor instead.
func (*DeleteFieldMappingResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{11}
}

type ListFieldMappingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldMappingsRequest) Reset() {
	*x = ListFieldMappingsRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldMappingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldMappingsRequest) ProtoMessage() {}

func (x *ListFieldMappingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldMappingsRequest.ProtoReflect.Descriptor instead.
func (*ListFieldMappingsRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{12}
}

func (x *ListFieldMappingsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ListFieldMappingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mappings      []*FieldMapping        `protobuf:"bytes,1,rep,name=mappings,proto3" json:"mappings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldMappingsResponse) Reset() {
	*x = ListFieldMappingsResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldMappingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldMappingsResponse) ProtoMessage() {}

func (x *ListFieldMappingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldMappingsResponse.ProtoReflect.Descriptor instead.
func (*ListFieldMappingsResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{13}
}

func (x *ListFieldMappingsResponse) GetMappings() []*FieldMapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

type SuggestMappingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawKeys       []string               `protobuf:"bytes,1,rep,name=raw_keys,json=rawKeys,proto3" json:"raw_keys,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestMappingsRequest) Reset() {
	*x = SuggestMappingsRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestMappingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestMappingsRequest) ProtoMessage() {}

func (x *SuggestMappingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestMappingsRequest.ProtoReflect.Descriptor instead.
func (*SuggestMappingsRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{14}
}

func (x *SuggestMappingsRequest) GetRawKeys() []string {
	if x != nil {
		return x.RawKeys
	}
	return nil
}

type SuggestMappingsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// raw key -> suggested canonical field name, or "unmapped".
	Suggestions   map[string]string `protobuf:"bytes,1,rep,name=suggestions,proto3" json:"suggestions,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestMappingsResponse) Reset() {
	*x = SuggestMappingsResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestMappingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestMappingsResponse) ProtoMessage() {}

func (x *SuggestMappingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestMappingsResponse.ProtoReflect.Descriptor instead.
func (*SuggestMappingsResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{15}
}

func (x *SuggestMappingsResponse) GetSuggestions() map[string]string {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type InvoiceItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      *float64               `protobuf:"fixed64,2,opt,name=quantity,proto3,oneof" json:"quantity,omitempty"`
	UnitPrice     *float64               `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3,oneof" json:"unit_price,omitempty"`
	Total         *float64               `protobuf:"fixed64,4,opt,name=total,proto3,oneof" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvoiceItem) Reset() {
	*x = InvoiceItem{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceItem) ProtoMessage() {}

func (x *InvoiceItem) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceItem.ProtoReflect.Descriptor instead.
func (*InvoiceItem) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{16}
}

func (x *InvoiceItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *InvoiceItem) GetQuantity() float64 {
	if x != nil && x.Quantity != nil {
		return *x.Quantity
	}
	return 0
}

func (x *InvoiceItem) GetUnitPrice() float64 {
	if x != nil && x.UnitPrice != nil {
		return *x.UnitPrice
	}
	return 0
}

func (x *InvoiceItem) GetTotal() float64 {
	if x != nil && x.Total != nil {
		return *x.Total
	}
	return 0
}

type Invoice struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId           string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	VendorName          *string                `protobuf:"bytes,3,opt,name=vendor_name,json=vendorName,proto3,oneof" json:"vendor_name,omitempty"`
	InvoiceNumber       *string                `protobuf:"bytes,4,opt,name=invoice_number,json=invoiceNumber,proto3,oneof" json:"invoice_number,omitempty"`
	InvoiceDate         *string                `protobuf:"bytes,5,opt,name=invoice_date,json=invoiceDate,proto3,oneof" json:"invoice_date,omitempty"` // YYYY-MM-DD
	DueDate             *string                `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3,oneof" json:"due_date,omitempty"`             // YYYY-MM-DD
	TotalAmount         *float64               `protobuf:"fixed64,7,opt,name=total_amount,json=totalAmount,proto3,oneof" json:"total_amount,omitempty"`
	TaxAmount           *float64               `protobuf:"fixed64,8,opt,name=tax_amount,json=taxAmount,proto3,oneof" json:"tax_amount,omitempty"`
	Subtotal            *float64               `protobuf:"fixed64,9,opt,name=subtotal,proto3,oneof" json:"subtotal,omitempty"`
	DiscountAmount      *float64               `protobuf:"fixed64,10,opt,name=discount_amount,json=discountAmount,proto3,oneof" json:"discount_amount,omitempty"`
	AdditionalFees      *float64               `protobuf:"fixed64,11,opt,name=additional_fees,json=additionalFees,proto3,oneof" json:"additional_fees,omitempty"`
	Currency            string                 `protobuf:"bytes,12,opt,name=currency,proto3" json:"currency,omitempty"`
	PaymentTerms        *string                `protobuf:"bytes,13,opt,name=payment_terms,json=paymentTerms,proto3,oneof" json:"payment_terms,omitempty"`
	PurchaseOrderNumber *string                `protobuf:"bytes,14,opt,name=purchase_order_number,json=purchaseOrderNumber,proto3,oneof" json:"purchase_order_number,omitempty"`
	BillingAddress      *string                `protobuf:"bytes,15,opt,name=billing_address,json=billingAddress,proto3,oneof" json:"billing_address,omitempty"`
	ShippingAddress     *string                `protobuf:"bytes,16,opt,name=shipping_address,json=shippingAddress,proto3,oneof" json:"shipping_address,omitempty"`
	PaymentMethod       *string                `protobuf:"bytes,17,opt,name=payment_method,json=paymentMethod,proto3,oneof" json:"payment_method,omitempty"`
	Notes               *string                `protobuf:"bytes,18,opt,name=notes,proto3,oneof" json:"notes,omitempty"`
	FileUrl             string                 `protobuf:"bytes,19,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	Status              string                 `protobuf:"bytes,20,opt,name=status,proto3" json:"status,omitempty"`
	Items               []*InvoiceItem         `protobuf:"bytes,21,rep,name=items,proto3" json:"items,omitempty"`
	CreatedAt           string                 `protobuf:"bytes,22,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt           string                 `protobuf:"bytes,23,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{17}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Invoice) GetVendorName() string {
	if x != nil && x.VendorName != nil {
		return *x.VendorName
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil && x.InvoiceNumber != nil {
		return *x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil && x.InvoiceDate != nil {
		return *x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil && x.DueDate != nil {
		return *x.DueDate
	}
	return ""
}

func (x *Invoice) GetTotalAmount() float64 {
	if x != nil && x.TotalAmount != nil {
		return *x.TotalAmount
	}
	return 0
}

func (x *Invoice) GetTaxAmount() float64 {
	if x != nil && x.TaxAmount != nil {
		return *x.TaxAmount
	}
	return 0
}

func (x *Invoice) GetSubtotal() float64 {
	if x != nil && x.Subtotal != nil {
		return *x.Subtotal
	}
	return 0
}

func (x *Invoice) GetDiscountAmount() float64 {
	if x != nil && x.DiscountAmount != nil {
		return *x.DiscountAmount
	}
	return 0
}

func (x *Invoice) GetAdditionalFees() float64 {
	if x != nil && x.AdditionalFees != nil {
		return *x.AdditionalFees
	}
	return 0
}

func (x *Invoice) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Invoice) GetPaymentTerms() string {
	if x != nil && x.PaymentTerms != nil {
		return *x.PaymentTerms
	}
	return ""
}

func (x *Invoice) GetPurchaseOrderNumber() string {
	if x != nil && x.PurchaseOrderNumber != nil {
		return *x.PurchaseOrderNumber
	}
	return ""
}

func (x *Invoice) GetBillingAddress() string {
	if x != nil && x.BillingAddress != nil {
		return *x.BillingAddress
	}
	return ""
}

func (x *Invoice) GetShippingAddress() string {
	if x != nil && x.ShippingAddress != nil {
		return *x.ShippingAddress
	}
	return ""
}

func (x *Invoice) GetPaymentMethod() string {
	if x != nil && x.PaymentMethod != nil {
		return *x.PaymentMethod
	}
	return ""
}

func (x *Invoice) GetNotes() string {
	if x != nil && x.Notes != nil {
		return *x.Notes
	}
	return ""
}

func (x *Invoice) GetFileUrl() string {
	if x != nil {
		return x.FileUrl
	}
	return ""
}

func (x *Invoice) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Invoice) GetItems() []*InvoiceItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type UploadFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Data          []byte                 `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadFile) Reset() {
	*x = UploadFile{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFile) ProtoMessage() {}

func (x *UploadFile) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFile.ProtoReflect.Descriptor instead.
func (*UploadFile) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{18}
}

func (x *UploadFile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UploadFile) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadFile) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type IngestBatchRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProfileId string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Files     []*UploadFile          `protobuf:"bytes,2,rep,name=files,proto3" json:"files,omitempty"`
	// Accepted mapping overrides: raw key -> target field name.
	Overrides       map[string]string `protobuf:"bytes,3,rep,name=overrides,proto3" json:"overrides,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Exclusions      []string          `protobuf:"bytes,4,rep,name=exclusions,proto3" json:"exclusions,omitempty"`
	DefaultCurrency string            `protobuf:"bytes,5,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *IngestBatchRequest) Reset() {
	*x = IngestBatchRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestBatchRequest) ProtoMessage() {}

func (x *IngestBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestBatchRequest.ProtoReflect.Descriptor instead.
func (*IngestBatchRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{19}
}

func (x *IngestBatchRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestBatchRequest) GetFiles() []*UploadFile {
	if x != nil {
		return x.Files
	}
	return nil
}

func (x *IngestBatchRequest) GetOverrides() map[string]string {
	if x != nil {
		return x.Overrides
	}
	return nil
}

func (x *IngestBatchRequest) GetExclusions() []string {
	if x != nil {
		return x.Exclusions
	}
	return nil
}

func (x *IngestBatchRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

type IngestFileResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Invoice       *Invoice               `protobuf:"bytes,2,opt,name=invoice,proto3" json:"invoice,omitempty"`
	Warnings      []string               `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileResult) Reset() {
	*x = IngestFileResult{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileResult) ProtoMessage() {}

func (x *IngestFileResult) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileResult.ProtoReflect.Descriptor instead.
func (*IngestFileResult) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{20}
}

func (x *IngestFileResult) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *IngestFileResult) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

func (x *IngestFileResult) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *IngestFileResult) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*IngestFileResult    `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestBatchResponse) Reset() {
	*x = IngestBatchResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestBatchResponse) ProtoMessage() {}

func (x *IngestBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestBatchResponse.ProtoReflect.Descriptor instead.
func (*IngestBatchResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{21}
}

func (x *IngestBatchResponse) GetResults() []*IngestFileResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{22}
}

func (x *ListInvoicesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{23}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type GetInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	InvoiceId     string                 `protobuf:"bytes,2,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceRequest) Reset() {
	*x = GetInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceRequest) ProtoMessage() {}

func (x *GetInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{24}
}

func (x *GetInvoiceRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *GetInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type GetInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceResponse) Reset() {
	*x = GetInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceResponse) ProtoMessage() {}

func (x *GetInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceResponse.ProtoReflect.Descriptor instead.
func (*GetInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{25}
}

func (x *GetInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type DateRange struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Earliest      string                 `protobuf:"bytes,1,opt,name=earliest,proto3" json:"earliest,omitempty"` // YYYY-MM-DD
	Latest        string                 `protobuf:"bytes,2,opt,name=latest,proto3" json:"latest,omitempty"`     // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DateRange) Reset() {
	*x = DateRange{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DateRange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DateRange) ProtoMessage() {}

func (x *DateRange) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DateRange.ProtoReflect.Descriptor instead.
func (*DateRange) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{26}
}

func (x *DateRange) GetEarliest() string {
	if x != nil {
		return x.Earliest
	}
	return ""
}

func (x *DateRange) GetLatest() string {
	if x != nil {
		return x.Latest
	}
	return ""
}

type MergeInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	InvoiceIds    []string               `protobuf:"bytes,2,rep,name=invoice_ids,json=invoiceIds,proto3" json:"invoice_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MergeInvoicesRequest) Reset() {
	*x = MergeInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeInvoicesRequest) ProtoMessage() {}

func (x *MergeInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeInvoicesRequest.ProtoReflect.Descriptor instead.
func (*MergeInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{27}
}

func (x *MergeInvoicesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *MergeInvoicesRequest) GetInvoiceIds() []string {
	if x != nil {
		return x.InvoiceIds
	}
	return nil
}

type MergeInvoicesResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	RequestedCount      int32                  `protobuf:"varint,1,opt,name=requested_count,json=requestedCount,proto3" json:"requested_count,omitempty"`
	TotalInvoices       int32                  `protobuf:"varint,2,opt,name=total_invoices,json=totalInvoices,proto3" json:"total_invoices,omitempty"`
	TotalAmount         string                 `protobuf:"bytes,3,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"` // decimal string
	TotalTax            string                 `protobuf:"bytes,4,opt,name=total_tax,json=totalTax,proto3" json:"total_tax,omitempty"`
	TotalSubtotal       string                 `protobuf:"bytes,5,opt,name=total_subtotal,json=totalSubtotal,proto3" json:"total_subtotal,omitempty"`
	TotalDiscount       string                 `protobuf:"bytes,6,opt,name=total_discount,json=totalDiscount,proto3" json:"total_discount,omitempty"`
	TotalAdditionalFees string                 `protobuf:"bytes,7,opt,name=total_additional_fees,json=totalAdditionalFees,proto3" json:"total_additional_fees,omitempty"`
	Currency            string                 `protobuf:"bytes,8,opt,name=currency,proto3" json:"currency,omitempty"`
	DateRange           *DateRange             `protobuf:"bytes,9,opt,name=date_range,json=dateRange,proto3" json:"date_range,omitempty"`
	SkippedDocuments    int32                  `protobuf:"varint,10,opt,name=skipped_documents,json=skippedDocuments,proto3" json:"skipped_documents,omitempty"`
	FileName            string                 `protobuf:"bytes,11,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileUrl             string                 `protobuf:"bytes,12,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	FileSize            int64                  `protobuf:"varint,13,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	HistoryId           string                 `protobuf:"bytes,14,opt,name=history_id,json=historyId,proto3" json:"history_id,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *MergeInvoicesResponse) Reset() {
	*x = MergeInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeInvoicesResponse) ProtoMessage() {}

func (x *MergeInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeInvoicesResponse.ProtoReflect.Descriptor instead.
func (*MergeInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{28}
}

func (x *MergeInvoicesResponse) GetRequestedCount() int32 {
	if x != nil {
		return x.RequestedCount
	}
	return 0
}

func (x *MergeInvoicesResponse) GetTotalInvoices() int32 {
	if x != nil {
		return x.TotalInvoices
	}
	return 0
}

func (x *MergeInvoicesResponse) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *MergeInvoicesResponse) GetTotalTax() string {
	if x != nil {
		return x.TotalTax
	}
	return ""
}

func (x *MergeInvoicesResponse) GetTotalSubtotal() string {
	if x != nil {
		return x.TotalSubtotal
	}
	return ""
}

func (x *MergeInvoicesResponse) GetTotalDiscount() string {
	if x != nil {
		return x.TotalDiscount
	}
	return ""
}

func (x *MergeInvoicesResponse) GetTotalAdditionalFees() string {
	if x != nil {
		return x.TotalAdditionalFees
	}
	return ""
}

func (x *MergeInvoicesResponse) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *MergeInvoicesResponse) GetDateRange() *DateRange {
	if x != nil {
		return x.DateRange
	}
	return nil
}

func (x *MergeInvoicesResponse) GetSkippedDocuments() int32 {
	if x != nil {
		return x.SkippedDocuments
	}
	return 0
}

func (x *MergeInvoicesResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *MergeInvoicesResponse) GetFileUrl() string {
	if x != nil {
		return x.FileUrl
	}
	return ""
}

func (x *MergeInvoicesResponse) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *MergeInvoicesResponse) GetHistoryId() string {
	if x != nil {
		return x.HistoryId
	}
	return ""
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	InvoiceIds    []string               `protobuf:"bytes,2,rep,name=invoice_ids,json=invoiceIds,proto3" json:"invoice_ids,omitempty"`
	ExportType    string                 `protobuf:"bytes,3,opt,name=export_type,json=exportType,proto3" json:"export_type,omitempty"` // TEXT | CSV | JSON | XLSX
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{29}
}

func (x *ExportInvoicesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportInvoicesRequest) GetInvoiceIds() []string {
	if x != nil {
		return x.InvoiceIds
	}
	return nil
}

func (x *ExportInvoicesRequest) GetExportType() string {
	if x != nil {
		return x.ExportType
	}
	return ""
}

type ExportHistoryRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	InvoiceIds    []string               `protobuf:"bytes,3,rep,name=invoice_ids,json=invoiceIds,proto3" json:"invoice_ids,omitempty"`
	ExportType    string                 `protobuf:"bytes,4,opt,name=export_type,json=exportType,proto3" json:"export_type,omitempty"`
	FileName      string                 `protobuf:"bytes,5,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileSize      int64                  `protobuf:"varint,6,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	FileUrl       string                 `protobuf:"bytes,7,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoryRecord) Reset() {
	*x = ExportHistoryRecord{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoryRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoryRecord) ProtoMessage() {}

func (x *ExportHistoryRecord) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoryRecord.ProtoReflect.Descriptor instead.
func (*ExportHistoryRecord) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{30}
}

func (x *ExportHistoryRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExportHistoryRecord) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportHistoryRecord) GetInvoiceIds() []string {
	if x != nil {
		return x.InvoiceIds
	}
	return nil
}

func (x *ExportHistoryRecord) GetExportType() string {
	if x != nil {
		return x.ExportType
	}
	return ""
}

func (x *ExportHistoryRecord) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ExportHistoryRecord) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *ExportHistoryRecord) GetFileUrl() string {
	if x != nil {
		return x.FileUrl
	}
	return ""
}

func (x *ExportHistoryRecord) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportHistoryRecord) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExportHistoryRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *ExportHistoryRecord   `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{31}
}

func (x *ExportInvoicesResponse) GetRecord() *ExportHistoryRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ListExportHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExportHistoryRequest) Reset() {
	*x = ListExportHistoryRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExportHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExportHistoryRequest) ProtoMessage() {}

func (x *ListExportHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExportHistoryRequest.ProtoReflect.Descriptor instead.
func (*ListExportHistoryRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{32}
}

func (x *ListExportHistoryRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ListExportHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*ExportHistoryRecord `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExportHistoryResponse) Reset() {
	*x = ListExportHistoryResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExportHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExportHistoryResponse) ProtoMessage() {}

func (x *ListExportHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExportHistoryResponse.ProtoReflect.Descriptor instead.
func (*ListExportHistoryResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{33}
}

func (x *ListExportHistoryResponse) GetRecords() []*ExportHistoryRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type DeleteExportHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	RecordIds     []string               `protobuf:"bytes,2,rep,name=record_ids,json=recordIds,proto3" json:"record_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExportHistoryRequest) Reset() {
	*x = DeleteExportHistoryRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExportHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExportHistoryRequest) ProtoMessage() {}

func (x *DeleteExportHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExportHistoryRequest.ProtoReflect.Descriptor instead.
func (*DeleteExportHistoryRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{34}
}

func (x *DeleteExportHistoryRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *DeleteExportHistoryRequest) GetRecordIds() []string {
	if x != nil {
		return x.RecordIds
	}
	return nil
}

type DeleteExportHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       int32                  `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExportHistoryResponse) Reset() {
	*x = DeleteExportHistoryResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExportHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExportHistoryResponse) ProtoMessage() {}

func (x *DeleteExportHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExportHistoryResponse.ProtoReflect.Descriptor instead.
func (*DeleteExportHistoryResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{35}
}

func (x *DeleteExportHistoryResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\"\xae\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12+\n" +
	"\x11subscription_tier\x18\x04 \x01(\tR\x10subscriptionTier\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"k\n" +
	"\x14CreateProfileRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12)\n" +
	"\x10default_currency\x18\x03 \x01(\tR\x0fdefaultCurrency\"G\n" +
	"\x15CreateProfileResponse\x12.\n" +
	"\aprofile\x18\x01 \x01(\v2\x14.invoices.v1.ProfileR\aprofile\"2\n" +
	"\x11GetProfileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"D\n" +
	"\x12GetProfileResponse\x12.\n" +
	"\aprofile\x18\x01 \x01(\v2\x14.invoices.v1.ProfileR\aprofile\"\xe9\x02\n" +
	"\fFieldMapping\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x1d\n" +
	"\n" +
	"field_name\x18\x03 \x01(\tR\tfieldName\x12'\n" +
	"\x0fvalidation_kind\x18\x04 \x01(\tR\x0evalidationKind\x12-\n" +
	"\x12validation_pattern\x18\x05 \x01(\tR\x11validationPattern\x12-\n" +
	"\x12validation_message\x18\x06 \x01(\tR\x11validationMessage\x12\x1a\n" +
	"\brequired\x18\a \x01(\bR\brequired\x12*\n" +
	"\x11custom_rules_json\x18\b \x01(\tR\x0fcustomRulesJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"Y\n" +
	"\x19CreateFieldMappingRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1d\n" +
	"\n" +
	"field_name\x18\x02 \x01(\tR\tfieldName\"Q\n" +
	"\x1aCreateFieldMappingResponse\x123\n" +
	"\amapping\x18\x01 \x01(\v2\x19.invoices.v1.FieldMappingR\amapping\"\xa6\x03\n" +
	"\x19UpdateFieldMappingRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1d\n" +
	"\n" +
	"mapping_id\x18\x02 \x01(\tR\tmappingId\x12,\n" +
	"\x0fvalidation_kind\x18\x03 \x01(\tH\x00R\x0evalidationKind\x88\x01\x01\x122\n" +
	"\x12validation_pattern\x18\x04 \x01(\tH\x01R\x11validationPattern\x88\x01\x01\x122\n" +
	"\x12validation_message\x18\x05 \x01(\tH\x02R\x11validationMessage\x88\x01\x01\x12\x1f\n" +
	"\brequired\x18\x06 \x01(\bH\x03R\brequired\x88\x01\x01\x12/\n" +
	"\x11custom_rules_json\x18\a \x01(\tH\x04R\x0fcustomRulesJson\x88\x01\x01B\x12\n" +
	"\x10_validation_kindB\x15\n" +
	"\x13_validation_patternB\x15\n" +
	"\x13_validation_messageB\v\n" +
	"\t_requiredB\x14\n" +
	"\x12_custom_rules_json\"Q\n" +
	"\x1aUpdateFieldMappingResponse\x123\n" +
	"\amapping\x18\x01 \x01(\v2\x19.invoices.v1.FieldMappingR\amapping\"Y\n" +
	"\x19DeleteFieldMappingRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1d\n" +
	"\n" +
	"mapping_id\x18\x02 \x01(\tR\tmappingId\"\x1c\n" +
	"\x1aDeleteFieldMappingResponse\"9\n" +
	"\x18ListFieldMappingsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"R\n" +
	"\x19ListFieldMappingsResponse\x125\n" +
	"\bmappings\x18\x01 \x03(\v2\x19.invoices.v1.FieldMappingR\bmappings\"3\n" +
	"\x16SuggestMappingsRequest\x12\x19\n" +
	"\braw_keys\x18\x01 \x03(\tR\arawKeys\"\xb2\x01\n" +
	"\x17SuggestMappingsResponse\x12W\n" +
	"\vsuggestions\x18\x01 \x03(\v25.invoices.v1.SuggestMappingsResponse.SuggestionsEntryR\vsuggestions\x1a>\n" +
	"\x10SuggestionsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xb5\x01\n" +
	"\vInvoiceItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1f\n" +
	"\bquantity\x18\x02 \x01(\x01H\x00R\bquantity\x88\x01\x01\x12\"\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01H\x01R\tunitPrice\x88\x01\x01\x12\x19\n" +
	"\x05total\x18\x04 \x01(\x01H\x02R\x05total\x88\x01\x01B\v\n" +
	"\t_quantityB\r\n" +
	"\v_unit_priceB\b\n" +
	"\x06_total\"\xe8\b\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12$\n" +
	"\vvendor_name\x18\x03 \x01(\tH\x00R\n" +
	"vendorName\x88\x01\x01\x12*\n" +
	"\x0einvoice_number\x18\x04 \x01(\tH\x01R\rinvoiceNumber\x88\x01\x01\x12&\n" +
	"\finvoice_date\x18\x05 \x01(\tH\x02R\vinvoiceDate\x88\x01\x01\x12\x1e\n" +
	"\bdue_date\x18\x06 \x01(\tH\x03R\adueDate\x88\x01\x01\x12&\n" +
	"\ftotal_amount\x18\a \x01(\x01H\x04R\vtotalAmount\x88\x01\x01\x12\"\n" +
	"\n" +
	"tax_amount\x18\b \x01(\x01H\x05R\ttaxAmount\x88\x01\x01\x12\x1f\n" +
	"\bsubtotal\x18\t \x01(\x01H\x06R\bsubtotal\x88\x01\x01\x12,\n" +
	"\x0fdiscount_amount\x18\n" +
	" \x01(\x01H\aR\x0ediscountAmount\x88\x01\x01\x12,\n" +
	"\x0fadditional_fees\x18\v \x01(\x01H\bR\x0eadditionalFees\x88\x01\x01\x12\x1a\n" +
	"\bcurrency\x18\f \x01(\tR\bcurrency\x12(\n" +
	"\rpayment_terms\x18\r \x01(\tH\tR\fpaymentTerms\x88\x01\x01\x127\n" +
	"\x15purchase_order_number\x18\x0e \x01(\tH\n" +
	"R\x13purchaseOrderNumber\x88\x01\x01\x12,\n" +
	"\x0fbilling_address\x18\x0f \x01(\tH\vR\x0ebillingAddress\x88\x01\x01\x12.\n" +
	"\x10shipping_address\x18\x10 \x01(\tH\fR\x0fshippingAddress\x88\x01\x01\x12*\n" +
	"\x0epayment_method\x18\x11 \x01(\tH\rR\rpaymentMethod\x88\x01\x01\x12\x19\n" +
	"\x05notes\x18\x12 \x01(\tH\x0eR\x05notes\x88\x01\x01\x12\x19\n" +
	"\bfile_url\x18\x13 \x01(\tR\afileUrl\x12\x16\n" +
	"\x06status\x18\x14 \x01(\tR\x06status\x12.\n" +
	"\x05items\x18\x15 \x03(\v2\x18.invoices.v1.InvoiceItemR\x05items\x12\x1d\n" +
	"\n" +
	"created_at\x18\x16 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x17 \x01(\tR\tupdatedAtB\x0e\n" +
	"\f_vendor_nameB\x11\n" +
	"\x0f_invoice_numberB\x0f\n" +
	"\r_invoice_dateB\v\n" +
	"\t_due_dateB\x0f\n" +
	"\r_total_amountB\r\n" +
	"\v_tax_amountB\v\n" +
	"\t_subtotalB\x12\n" +
	"\x10_discount_amountB\x12\n" +
	"\x10_additional_feesB\x10\n" +
	"\x0e_payment_termsB\x18\n" +
	"\x16_purchase_order_numberB\x12\n" +
	"\x10_billing_addressB\x13\n" +
	"\x11_shipping_addressB\x11\n" +
	"\x0f_payment_methodB\b\n" +
	"\x06_notes\"W\n" +
	"\n" +
	"UploadFile\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x12\n" +
	"\x04data\x18\x03 \x01(\fR\x04data\"\xb9\x02\n" +
	"\x12IngestBatchRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12-\n" +
	"\x05files\x18\x02 \x03(\v2\x17.invoices.v1.UploadFileR\x05files\x12L\n" +
	"\toverrides\x18\x03 \x03(\v2..invoices.v1.IngestBatchRequest.OverridesEntryR\toverrides\x12\x1e\n" +
	"\n" +
	"exclusions\x18\x04 \x03(\tR\n" +
	"exclusions\x12)\n" +
	"\x10default_currency\x18\x05 \x01(\tR\x0fdefaultCurrency\x1a<\n" +
	"\x0eOverridesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x91\x01\n" +
	"\x10IngestFileResult\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12.\n" +
	"\ainvoice\x18\x02 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\x12\x1a\n" +
	"\bwarnings\x18\x03 \x03(\tR\bwarnings\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"N\n" +
	"\x13IngestBatchResponse\x127\n" +
	"\aresults\x18\x01 \x03(\v2\x1d.invoices.v1.IngestFileResultR\aresults\"4\n" +
	"\x13ListInvoicesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"H\n" +
	"\x14ListInvoicesResponse\x120\n" +
	"\binvoices\x18\x01 \x03(\v2\x14.invoices.v1.InvoiceR\binvoices\"Q\n" +
	"\x11GetInvoiceRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x02 \x01(\tR\tinvoiceId\"D\n" +
	"\x12GetInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"?\n" +
	"\tDateRange\x12\x1a\n" +
	"\bearliest\x18\x01 \x01(\tR\bearliest\x12\x16\n" +
	"\x06latest\x18\x02 \x01(\tR\x06latest\"V\n" +
	"\x14MergeInvoicesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1f\n" +
	"\vinvoice_ids\x18\x02 \x03(\tR\n" +
	"invoiceIds\"\x9d\x04\n" +
	"\x15MergeInvoicesResponse\x12'\n" +
	"\x0frequested_count\x18\x01 \x01(\x05R\x0erequestedCount\x12%\n" +
	"\x0etotal_invoices\x18\x02 \x01(\x05R\rtotalInvoices\x12!\n" +
	"\ftotal_amount\x18\x03 \x01(\tR\vtotalAmount\x12\x1b\n" +
	"\ttotal_tax\x18\x04 \x01(\tR\btotalTax\x12%\n" +
	"\x0etotal_subtotal\x18\x05 \x01(\tR\rtotalSubtotal\x12%\n" +
	"\x0etotal_discount\x18\x06 \x01(\tR\rtotalDiscount\x122\n" +
	"\x15total_additional_fees\x18\a \x01(\tR\x13totalAdditionalFees\x12\x1a\n" +
	"\bcurrency\x18\b \x01(\tR\bcurrency\x125\n" +
	"\n" +
	"date_range\x18\t \x01(\v2\x16.invoices.v1.DateRangeR\tdateRange\x12+\n" +
	"\x11skipped_documents\x18\n" +
	" \x01(\x05R\x10skippedDocuments\x12\x1b\n" +
	"\tfile_name\x18\v \x01(\tR\bfileName\x12\x19\n" +
	"\bfile_url\x18\f \x01(\tR\afileUrl\x12\x1b\n" +
	"\tfile_size\x18\r \x01(\x03R\bfileSize\x12\x1d\n" +
	"\n" +
	"history_id\x18\x0e \x01(\tR\thistoryId\"x\n" +
	"\x15ExportInvoicesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1f\n" +
	"\vinvoice_ids\x18\x02 \x03(\tR\n" +
	"invoiceIds\x12\x1f\n" +
	"\vexport_type\x18\x03 \x01(\tR\n" +
	"exportType\"\xb7\x02\n" +
	"\x13ExportHistoryRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x1f\n" +
	"\vinvoice_ids\x18\x03 \x03(\tR\n" +
	"invoiceIds\x12\x1f\n" +
	"\vexport_type\x18\x04 \x01(\tR\n" +
	"exportType\x12\x1b\n" +
	"\tfile_name\x18\x05 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_size\x18\x06 \x01(\x03R\bfileSize\x12\x19\n" +
	"\bfile_url\x18\a \x01(\tR\afileUrl\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\"R\n" +
	"\x16ExportInvoicesResponse\x128\n" +
	"\x06record\x18\x01 \x01(\v2 .invoices.v1.ExportHistoryRecordR\x06record\"9\n" +
	"\x18ListExportHistoryRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"W\n" +
	"\x19ListExportHistoryResponse\x12:\n" +
	"\arecords\x18\x01 \x03(\v2 .invoices.v1.ExportHistoryRecordR\arecords\"Z\n" +
	"\x1aDeleteExportHistoryRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1d\n" +
	"\n" +
	"record_ids\x18\x02 \x03(\tR\trecordIds\"7\n" +
	"\x1bDeleteExportHistoryResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\x05R\adeleted2\xb8\x01\n" +
	"\x0fProfilesService\x12V\n" +
	"\rCreateProfile\x12!.invoices.v1.CreateProfileRequest\x1a\".invoices.v1.CreateProfileResponse\x12M\n" +
	"\n" +
	"GetProfile\x12\x1e.invoices.v1.GetProfileRequest\x1a\x1f.invoices.v1.GetProfileResponse2\x88\x04\n" +
	"\x0fMappingsService\x12e\n" +
	"\x12CreateFieldMapping\x12&.invoices.v1.CreateFieldMappingRequest\x1a'.invoices.v1.CreateFieldMappingResponse\x12e\n" +
	"\x12UpdateFieldMapping\x12&.invoices.v1.UpdateFieldMappingRequest\x1a'.invoices.v1.UpdateFieldMappingResponse\x12e\n" +
	"\x12DeleteFieldMapping\x12&.invoices.v1.DeleteFieldMappingRequest\x1a'.invoices.v1.DeleteFieldMappingResponse\x12b\n" +
	"\x11ListFieldMappings\x12%.invoices.v1.ListFieldMappingsRequest\x1a&.invoices.v1.ListFieldMappingsResponse\x12\\\n" +
	"\x0fSuggestMappings\x12#.invoices.v1.SuggestMappingsRequest\x1a$.invoices.v1.SuggestMappingsResponse2\x87\x02\n" +
	"\x0fInvoicesService\x12P\n" +
	"\vIngestBatch\x12\x1f.invoices.v1.IngestBatchRequest\x1a .invoices.v1.IngestBatchResponse\x12S\n" +
	"\fListInvoices\x12 .invoices.v1.ListInvoicesRequest\x1a!.invoices.v1.ListInvoicesResponse\x12M\n" +
	"\n" +
	"GetInvoice\x12\x1e.invoices.v1.GetInvoiceRequest\x1a\x1f.invoices.v1.GetInvoiceResponse2\x91\x03\n" +
	"\x0eExportsService\x12V\n" +
	"\rMergeInvoices\x12!.invoices.v1.MergeInvoicesRequest\x1a\".invoices.v1.MergeInvoicesResponse\x12Y\n" +
	"\x0eExportInvoices\x12\".invoices.v1.ExportInvoicesRequest\x1a#.invoices.v1.ExportInvoicesResponse\x12b\n" +
	"\x11ListExportHistory\x12%.invoices.v1.ListExportHistoryRequest\x1a&.invoices.v1.ListExportHistoryResponse\x12h\n" +
	"\x13DeleteExportHistory\x12'.invoices.v1.DeleteExportHistoryRequest\x1a(.invoices.v1.DeleteExportHistoryResponseBDZBgithub.com/seyi-ajadi/invoiceflow/gen/proto/invoices/v1;invoicesv1b\x06proto3"

var (
	file_invoices_v1_invoices_proto_rawDescOnce sync.Once
	file_invoices_v1_invoices_proto_rawDescData []byte
)

func file_invoices_v1_invoices_proto_rawDescGZIP() []byte {
	file_invoices_v1_invoices_proto_rawDescOnce.Do(func() {
		file_invoices_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)))
	})
	return file_invoices_v1_invoices_proto_rawDescData
}

var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 38)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(*Profile)(nil),                     // 0: invoices.v1.Profile
	(*CreateProfileRequest)(nil),        // 1: invoices.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),       // 2: invoices.v1.CreateProfileResponse
	(*GetProfileRequest)(nil),           // 3: invoices.v1.GetProfileRequest
	(*GetProfileResponse)(nil),          // 4: invoices.v1.GetProfileResponse
	(*FieldMapping)(nil),                // 5: invoices.v1.FieldMapping
	(*CreateFieldMappingRequest)(nil),   // 6: invoices.v1.CreateFieldMappingRequest
	(*CreateFieldMappingResponse)(nil),  // 7: invoices.v1.CreateFieldMappingResponse
	(*UpdateFieldMappingRequest)(nil),   // 8: invoices.v1.UpdateFieldMappingRequest
	(*UpdateFieldMappingResponse)(nil),  // 9: invoices.v1.UpdateFieldMappingResponse
	(*DeleteFieldMappingRequest)(nil),   // 10: invoices.v1.DeleteFieldMappingRequest
	(*DeleteFieldMappingResponse)(nil),  // 11: invoices.v1.DeleteFieldMappingResponse
	(*ListFieldMappingsRequest)(nil),    // 12: invoices.v1.ListFieldMappingsRequest
	(*ListFieldMappingsResponse)(nil),   // 13: invoices.v1.ListFieldMappingsResponse
	(*SuggestMappingsRequest)(nil),      // 14: invoices.v1.SuggestMappingsRequest
	(*SuggestMappingsResponse)(nil),     // 15: invoices.v1.SuggestMappingsResponse
	(*InvoiceItem)(nil),                 // 16: invoices.v1.InvoiceItem
	(*Invoice)(nil),                     // 17: invoices.v1.Invoice
	(*UploadFile)(nil),                  // 18: invoices.v1.UploadFile
	(*IngestBatchRequest)(nil),          // 19: invoices.v1.IngestBatchRequest
	(*IngestFileResult)(nil),            // 20: invoices.v1.IngestFileResult
	(*IngestBatchResponse)(nil),         // 21: invoices.v1.IngestBatchResponse
	(*ListInvoicesRequest)(nil),         // 22: invoices.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),        // 23: invoices.v1.ListInvoicesResponse
	(*GetInvoiceRequest)(nil),           // 24: invoices.v1.GetInvoiceRequest
	(*GetInvoiceResponse)(nil),          // 25: invoices.v1.GetInvoiceResponse
	(*DateRange)(nil),                   // 26: invoices.v1.DateRange
	(*MergeInvoicesRequest)(nil),        // 27: invoices.v1.MergeInvoicesRequest
	(*MergeInvoicesResponse)(nil),       // 28: invoices.v1.MergeInvoicesResponse
	(*ExportInvoicesRequest)(nil),       // 29: invoices.v1.ExportInvoicesRequest
	(*ExportHistoryRecord)(nil),         // 30: invoices.v1.ExportHistoryRecord
	(*ExportInvoicesResponse)(nil),      // 31: invoices.v1.ExportInvoicesResponse
	(*ListExportHistoryRequest)(nil),    // 32: invoices.v1.ListExportHistoryRequest
	(*ListExportHistoryResponse)(nil),   // 33: invoices.v1.ListExportHistoryResponse
	(*DeleteExportHistoryRequest)(nil),  // 34: invoices.v1.DeleteExportHistoryRequest
	(*DeleteExportHistoryResponse)(nil), // 35: invoices.v1.DeleteExportHistoryResponse
	nil,                                 // 36: invoices.v1.SuggestMappingsResponse.SuggestionsEntry
	nil,                                 // 37: invoices.v1.IngestBatchRequest.OverridesEntry
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	0,  // 0: invoices.v1.CreateProfileResponse.profile:type_name -> invoices.v1.Profile
	0,  // 1: invoices.v1.GetProfileResponse.profile:type_name -> invoices.v1.Profile
	5,  // 2: invoices.v1.CreateFieldMappingResponse.mapping:type_name -> invoices.v1.FieldMapping
	5,  // 3: invoices.v1.UpdateFieldMappingResponse.mapping:type_name -> invoices.v1.FieldMapping
	5,  // 4: invoices.v1.ListFieldMappingsResponse.mappings:type_name -> invoices.v1.FieldMapping
	36, // 5: invoices.v1.SuggestMappingsResponse.suggestions:type_name -> invoices.v1.SuggestMappingsResponse.SuggestionsEntry
	16, // 6: invoices.v1.Invoice.items:type_name -> invoices.v1.InvoiceItem
	18, // 7: invoices.v1.IngestBatchRequest.files:type_name -> invoices.v1.UploadFile
	37, // 8: invoices.v1.IngestBatchRequest.overrides:type_name -> invoices.v1.IngestBatchRequest.OverridesEntry
	17, // 9: invoices.v1.IngestFileResult.invoice:type_name -> invoices.v1.Invoice
	20, // 10: invoices.v1.IngestBatchResponse.results:type_name -> invoices.v1.IngestFileResult
	17, // 11: invoices.v1.ListInvoicesResponse.invoices:type_name -> invoices.v1.Invoice
	17, // 12: invoices.v1.GetInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	26, // 13: invoices.v1.MergeInvoicesResponse.date_range:type_name -> invoices.v1.DateRange
	30, // 14: invoices.v1.ExportInvoicesResponse.record:type_name -> invoices.v1.ExportHistoryRecord
	30, // 15: invoices.v1.ListExportHistoryResponse.records:type_name -> invoices.v1.ExportHistoryRecord
	1,  // 16: invoices.v1.ProfilesService.CreateProfile:input_type -> invoices.v1.CreateProfileRequest
	3,  // 17: invoices.v1.ProfilesService.GetProfile:input_type -> invoices.v1.GetProfileRequest
	6,  // 18: invoices.v1.MappingsService.CreateFieldMapping:input_type -> invoices.v1.CreateFieldMappingRequest
	8,  // 19: invoices.v1.MappingsService.UpdateFieldMapping:input_type -> invoices.v1.UpdateFieldMappingRequest
	10, // 20: invoices.v1.MappingsService.DeleteFieldMapping:input_type -> invoices.v1.DeleteFieldMappingRequest
	12, // 21: invoices.v1.MappingsService.ListFieldMappings:input_type -> invoices.v1.ListFieldMappingsRequest
	14, // 22: invoices.v1.MappingsService.SuggestMappings:input_type -> invoices.v1.SuggestMappingsRequest
	19, // 23: invoices.v1.InvoicesService.IngestBatch:input_type -> invoices.v1.IngestBatchRequest
	22, // 24: invoices.v1.InvoicesService.ListInvoices:input_type -> invoices.v1.ListInvoicesRequest
	24, // 25: invoices.v1.InvoicesService.GetInvoice:input_type -> invoices.v1.GetInvoiceRequest
	27, // 26: invoices.v1.ExportsService.MergeInvoices:input_type -> invoices.v1.MergeInvoicesRequest
	29, // 27: invoices.v1.ExportsService.ExportInvoices:input_type -> invoices.v1.ExportInvoicesRequest
	32, // 28: invoices.v1.ExportsService.ListExportHistory:input_type -> invoices.v1.ListExportHistoryRequest
	34, // 29: invoices.v1.ExportsService.DeleteExportHistory:input_type -> invoices.v1.DeleteExportHistoryRequest
	2,  // 30: invoices.v1.ProfilesService.CreateProfile:output_type -> invoices.v1.CreateProfileResponse
	4,  // 31: invoices.v1.ProfilesService.GetProfile:output_type -> invoices.v1.GetProfileResponse
	7,  // 32: invoices.v1.MappingsService.CreateFieldMapping:output_type -> invoices.v1.CreateFieldMappingResponse
	9,  // 33: invoices.v1.MappingsService.UpdateFieldMapping:output_type -> invoices.v1.UpdateFieldMappingResponse
	11, // 34: invoices.v1.MappingsService.DeleteFieldMapping:output_type -> invoices.v1.DeleteFieldMappingResponse
	13, // 35: invoices.v1.MappingsService.ListFieldMappings:output_type -> invoices.v1.ListFieldMappingsResponse
	15, // 36: invoices.v1.MappingsService.SuggestMappings:output_type -> invoices.v1.SuggestMappingsResponse
	21, // 37: invoices.v1.InvoicesService.IngestBatch:output_type -> invoices.v1.IngestBatchResponse
	23, // 38: invoices.v1.InvoicesService.ListInvoices:output_type -> invoices.v1.ListInvoicesResponse
	25, // 39: invoices.v1.InvoicesService.GetInvoice:output_type -> invoices.v1.GetInvoiceResponse
	28, // 40: invoices.v1.ExportsService.MergeInvoices:output_type -> invoices.v1.MergeInvoicesResponse
	31, // 41: invoices.v1.ExportsService.ExportInvoices:output_type -> invoices.v1.ExportInvoicesResponse
	33, // 42: invoices.v1.ExportsService.ListExportHistory:output_type -> invoices.v1.ListExportHistoryResponse
	35, // 43: invoices.v1.ExportsService.DeleteExportHistory:output_type -> invoices.v1.DeleteExportHistoryResponse
	30, // [30:44] is the sub-list for method output_type
	16, // [16:30] is the sub-list for method input_type
	16, // [16:16] is the sub-list for extension type_name
	16, // [16:16] is the sub-list for extension extendee
	0,  // [0:16] is the sub-list for field type_name
}

func init() { file_invoices_v1_invoices_proto_init() }
func file_invoices_v1_invoices_proto_init() {
	if File_invoices_v1_invoices_proto != nil {
		return
	}
	file_invoices_v1_invoices_proto_msgTypes[8].OneofWrappers = []any{}
	file_invoices_v1_invoices_proto_msgTypes[16].OneofWrappers = []any{}
	file_invoices_v1_invoices_proto_msgTypes[17].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   38,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}

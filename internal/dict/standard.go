package dict

import "github.com/simonhull/dcmcsv/internal/types"

// standardEntries is a subset of the PS3.6 registry covering the file meta
// group and the patient, study, series, equipment and image modules.
// Attributes with several permitted VRs use the first one.
var standardEntries = []Entry{
	{types.Tag{Group: 0x0002, Element: 0x0000}, types.VRUL, "FileMetaInformationGroupLength"},
	{types.Tag{Group: 0x0002, Element: 0x0001}, types.VROB, "FileMetaInformationVersion"},
	{types.Tag{Group: 0x0002, Element: 0x0002}, types.VRUI, "MediaStorageSOPClassUID"},
	{types.Tag{Group: 0x0002, Element: 0x0003}, types.VRUI, "MediaStorageSOPInstanceUID"},
	{types.Tag{Group: 0x0002, Element: 0x0010}, types.VRUI, "TransferSyntaxUID"},
	{types.Tag{Group: 0x0002, Element: 0x0012}, types.VRUI, "ImplementationClassUID"},
	{types.Tag{Group: 0x0002, Element: 0x0013}, types.VRSH, "ImplementationVersionName"},
	{types.Tag{Group: 0x0002, Element: 0x0016}, types.VRAE, "SourceApplicationEntityTitle"},
	{types.Tag{Group: 0x0008, Element: 0x0005}, types.VRCS, "SpecificCharacterSet"},
	{types.Tag{Group: 0x0008, Element: 0x0008}, types.VRCS, "ImageType"},
	{types.Tag{Group: 0x0008, Element: 0x0012}, types.VRDA, "InstanceCreationDate"},
	{types.Tag{Group: 0x0008, Element: 0x0013}, types.VRTM, "InstanceCreationTime"},
	{types.Tag{Group: 0x0008, Element: 0x0014}, types.VRUI, "InstanceCreatorUID"},
	{types.Tag{Group: 0x0008, Element: 0x0016}, types.VRUI, "SOPClassUID"},
	{types.Tag{Group: 0x0008, Element: 0x0018}, types.VRUI, "SOPInstanceUID"},
	{types.Tag{Group: 0x0008, Element: 0x0020}, types.VRDA, "StudyDate"},
	{types.Tag{Group: 0x0008, Element: 0x0021}, types.VRDA, "SeriesDate"},
	{types.Tag{Group: 0x0008, Element: 0x0022}, types.VRDA, "AcquisitionDate"},
	{types.Tag{Group: 0x0008, Element: 0x0023}, types.VRDA, "ContentDate"},
	{types.Tag{Group: 0x0008, Element: 0x002A}, types.VRDT, "AcquisitionDateTime"},
	{types.Tag{Group: 0x0008, Element: 0x0030}, types.VRTM, "StudyTime"},
	{types.Tag{Group: 0x0008, Element: 0x0031}, types.VRTM, "SeriesTime"},
	{types.Tag{Group: 0x0008, Element: 0x0032}, types.VRTM, "AcquisitionTime"},
	{types.Tag{Group: 0x0008, Element: 0x0033}, types.VRTM, "ContentTime"},
	{types.Tag{Group: 0x0008, Element: 0x0050}, types.VRSH, "AccessionNumber"},
	{types.Tag{Group: 0x0008, Element: 0x0060}, types.VRCS, "Modality"},
	{types.Tag{Group: 0x0008, Element: 0x0064}, types.VRCS, "ConversionType"},
	{types.Tag{Group: 0x0008, Element: 0x0068}, types.VRCS, "PresentationIntentType"},
	{types.Tag{Group: 0x0008, Element: 0x0070}, types.VRLO, "Manufacturer"},
	{types.Tag{Group: 0x0008, Element: 0x0080}, types.VRLO, "InstitutionName"},
	{types.Tag{Group: 0x0008, Element: 0x0081}, types.VRST, "InstitutionAddress"},
	{types.Tag{Group: 0x0008, Element: 0x0090}, types.VRPN, "ReferringPhysicianName"},
	{types.Tag{Group: 0x0008, Element: 0x1010}, types.VRSH, "StationName"},
	{types.Tag{Group: 0x0008, Element: 0x1030}, types.VRLO, "StudyDescription"},
	{types.Tag{Group: 0x0008, Element: 0x103E}, types.VRLO, "SeriesDescription"},
	{types.Tag{Group: 0x0008, Element: 0x1040}, types.VRLO, "InstitutionalDepartmentName"},
	{types.Tag{Group: 0x0008, Element: 0x1048}, types.VRPN, "PhysiciansOfRecord"},
	{types.Tag{Group: 0x0008, Element: 0x1050}, types.VRPN, "PerformingPhysicianName"},
	{types.Tag{Group: 0x0008, Element: 0x1060}, types.VRPN, "NameOfPhysiciansReadingStudy"},
	{types.Tag{Group: 0x0008, Element: 0x1070}, types.VRPN, "OperatorsName"},
	{types.Tag{Group: 0x0008, Element: 0x1090}, types.VRLO, "ManufacturerModelName"},
	{types.Tag{Group: 0x0008, Element: 0x1140}, types.VRSQ, "ReferencedImageSequence"},
	{types.Tag{Group: 0x0008, Element: 0x1150}, types.VRUI, "ReferencedSOPClassUID"},
	{types.Tag{Group: 0x0008, Element: 0x1155}, types.VRUI, "ReferencedSOPInstanceUID"},
	{types.Tag{Group: 0x0008, Element: 0x2111}, types.VRST, "DerivationDescription"},
	{types.Tag{Group: 0x0010, Element: 0x0010}, types.VRPN, "PatientName"},
	{types.Tag{Group: 0x0010, Element: 0x0020}, types.VRLO, "PatientID"},
	{types.Tag{Group: 0x0010, Element: 0x0021}, types.VRLO, "IssuerOfPatientID"},
	{types.Tag{Group: 0x0010, Element: 0x0030}, types.VRDA, "PatientBirthDate"},
	{types.Tag{Group: 0x0010, Element: 0x0032}, types.VRTM, "PatientBirthTime"},
	{types.Tag{Group: 0x0010, Element: 0x0040}, types.VRCS, "PatientSex"},
	{types.Tag{Group: 0x0010, Element: 0x1001}, types.VRPN, "OtherPatientNames"},
	{types.Tag{Group: 0x0010, Element: 0x1010}, types.VRAS, "PatientAge"},
	{types.Tag{Group: 0x0010, Element: 0x1020}, types.VRDS, "PatientSize"},
	{types.Tag{Group: 0x0010, Element: 0x1030}, types.VRDS, "PatientWeight"},
	{types.Tag{Group: 0x0010, Element: 0x1040}, types.VRLO, "PatientAddress"},
	{types.Tag{Group: 0x0010, Element: 0x2160}, types.VRSH, "EthnicGroup"},
	{types.Tag{Group: 0x0010, Element: 0x2180}, types.VRSH, "Occupation"},
	{types.Tag{Group: 0x0010, Element: 0x21B0}, types.VRLT, "AdditionalPatientHistory"},
	{types.Tag{Group: 0x0010, Element: 0x4000}, types.VRLT, "PatientComments"},
	{types.Tag{Group: 0x0018, Element: 0x0010}, types.VRLO, "ContrastBolusAgent"},
	{types.Tag{Group: 0x0018, Element: 0x0015}, types.VRCS, "BodyPartExamined"},
	{types.Tag{Group: 0x0018, Element: 0x0020}, types.VRCS, "ScanningSequence"},
	{types.Tag{Group: 0x0018, Element: 0x0021}, types.VRCS, "SequenceVariant"},
	{types.Tag{Group: 0x0018, Element: 0x0022}, types.VRCS, "ScanOptions"},
	{types.Tag{Group: 0x0018, Element: 0x0023}, types.VRCS, "MRAcquisitionType"},
	{types.Tag{Group: 0x0018, Element: 0x0024}, types.VRSH, "SequenceName"},
	{types.Tag{Group: 0x0018, Element: 0x0050}, types.VRDS, "SliceThickness"},
	{types.Tag{Group: 0x0018, Element: 0x0060}, types.VRDS, "KVP"},
	{types.Tag{Group: 0x0018, Element: 0x0080}, types.VRDS, "RepetitionTime"},
	{types.Tag{Group: 0x0018, Element: 0x0081}, types.VRDS, "EchoTime"},
	{types.Tag{Group: 0x0018, Element: 0x0082}, types.VRDS, "InversionTime"},
	{types.Tag{Group: 0x0018, Element: 0x0083}, types.VRDS, "NumberOfAverages"},
	{types.Tag{Group: 0x0018, Element: 0x0084}, types.VRDS, "ImagingFrequency"},
	{types.Tag{Group: 0x0018, Element: 0x0085}, types.VRSH, "ImagedNucleus"},
	{types.Tag{Group: 0x0018, Element: 0x0086}, types.VRIS, "EchoNumbers"},
	{types.Tag{Group: 0x0018, Element: 0x0087}, types.VRDS, "MagneticFieldStrength"},
	{types.Tag{Group: 0x0018, Element: 0x0088}, types.VRDS, "SpacingBetweenSlices"},
	{types.Tag{Group: 0x0018, Element: 0x0091}, types.VRIS, "EchoTrainLength"},
	{types.Tag{Group: 0x0018, Element: 0x0095}, types.VRDS, "PixelBandwidth"},
	{types.Tag{Group: 0x0018, Element: 0x1000}, types.VRLO, "DeviceSerialNumber"},
	{types.Tag{Group: 0x0018, Element: 0x1020}, types.VRLO, "SoftwareVersions"},
	{types.Tag{Group: 0x0018, Element: 0x1030}, types.VRLO, "ProtocolName"},
	{types.Tag{Group: 0x0018, Element: 0x1100}, types.VRDS, "ReconstructionDiameter"},
	{types.Tag{Group: 0x0018, Element: 0x1110}, types.VRDS, "DistanceSourceToDetector"},
	{types.Tag{Group: 0x0018, Element: 0x1111}, types.VRDS, "DistanceSourceToPatient"},
	{types.Tag{Group: 0x0018, Element: 0x1120}, types.VRDS, "GantryDetectorTilt"},
	{types.Tag{Group: 0x0018, Element: 0x1130}, types.VRDS, "TableHeight"},
	{types.Tag{Group: 0x0018, Element: 0x1140}, types.VRCS, "RotationDirection"},
	{types.Tag{Group: 0x0018, Element: 0x1150}, types.VRIS, "ExposureTime"},
	{types.Tag{Group: 0x0018, Element: 0x1151}, types.VRIS, "XRayTubeCurrent"},
	{types.Tag{Group: 0x0018, Element: 0x1152}, types.VRIS, "Exposure"},
	{types.Tag{Group: 0x0018, Element: 0x1160}, types.VRSH, "FilterType"},
	{types.Tag{Group: 0x0018, Element: 0x1170}, types.VRIS, "GeneratorPower"},
	{types.Tag{Group: 0x0018, Element: 0x1190}, types.VRDS, "FocalSpots"},
	{types.Tag{Group: 0x0018, Element: 0x1210}, types.VRSH, "ConvolutionKernel"},
	{types.Tag{Group: 0x0018, Element: 0x1250}, types.VRSH, "ReceiveCoilName"},
	{types.Tag{Group: 0x0018, Element: 0x1310}, types.VRUS, "AcquisitionMatrix"},
	{types.Tag{Group: 0x0018, Element: 0x1314}, types.VRDS, "FlipAngle"},
	{types.Tag{Group: 0x0018, Element: 0x5100}, types.VRCS, "PatientPosition"},
	{types.Tag{Group: 0x0020, Element: 0x000D}, types.VRUI, "StudyInstanceUID"},
	{types.Tag{Group: 0x0020, Element: 0x000E}, types.VRUI, "SeriesInstanceUID"},
	{types.Tag{Group: 0x0020, Element: 0x0010}, types.VRSH, "StudyID"},
	{types.Tag{Group: 0x0020, Element: 0x0011}, types.VRIS, "SeriesNumber"},
	{types.Tag{Group: 0x0020, Element: 0x0012}, types.VRIS, "AcquisitionNumber"},
	{types.Tag{Group: 0x0020, Element: 0x0013}, types.VRIS, "InstanceNumber"},
	{types.Tag{Group: 0x0020, Element: 0x0020}, types.VRCS, "PatientOrientation"},
	{types.Tag{Group: 0x0020, Element: 0x0032}, types.VRDS, "ImagePositionPatient"},
	{types.Tag{Group: 0x0020, Element: 0x0037}, types.VRDS, "ImageOrientationPatient"},
	{types.Tag{Group: 0x0020, Element: 0x0052}, types.VRUI, "FrameOfReferenceUID"},
	{types.Tag{Group: 0x0020, Element: 0x0060}, types.VRCS, "Laterality"},
	{types.Tag{Group: 0x0020, Element: 0x1040}, types.VRLO, "PositionReferenceIndicator"},
	{types.Tag{Group: 0x0020, Element: 0x1041}, types.VRDS, "SliceLocation"},
	{types.Tag{Group: 0x0020, Element: 0x4000}, types.VRLT, "ImageComments"},
	{types.Tag{Group: 0x0028, Element: 0x0002}, types.VRUS, "SamplesPerPixel"},
	{types.Tag{Group: 0x0028, Element: 0x0004}, types.VRCS, "PhotometricInterpretation"},
	{types.Tag{Group: 0x0028, Element: 0x0006}, types.VRUS, "PlanarConfiguration"},
	{types.Tag{Group: 0x0028, Element: 0x0008}, types.VRIS, "NumberOfFrames"},
	{types.Tag{Group: 0x0028, Element: 0x0010}, types.VRUS, "Rows"},
	{types.Tag{Group: 0x0028, Element: 0x0011}, types.VRUS, "Columns"},
	{types.Tag{Group: 0x0028, Element: 0x0030}, types.VRDS, "PixelSpacing"},
	{types.Tag{Group: 0x0028, Element: 0x0034}, types.VRIS, "PixelAspectRatio"},
	{types.Tag{Group: 0x0028, Element: 0x0100}, types.VRUS, "BitsAllocated"},
	{types.Tag{Group: 0x0028, Element: 0x0101}, types.VRUS, "BitsStored"},
	{types.Tag{Group: 0x0028, Element: 0x0102}, types.VRUS, "HighBit"},
	{types.Tag{Group: 0x0028, Element: 0x0103}, types.VRUS, "PixelRepresentation"},
	{types.Tag{Group: 0x0028, Element: 0x0106}, types.VRUS, "SmallestImagePixelValue"},
	{types.Tag{Group: 0x0028, Element: 0x0107}, types.VRUS, "LargestImagePixelValue"},
	{types.Tag{Group: 0x0028, Element: 0x1050}, types.VRDS, "WindowCenter"},
	{types.Tag{Group: 0x0028, Element: 0x1051}, types.VRDS, "WindowWidth"},
	{types.Tag{Group: 0x0028, Element: 0x1052}, types.VRDS, "RescaleIntercept"},
	{types.Tag{Group: 0x0028, Element: 0x1053}, types.VRDS, "RescaleSlope"},
	{types.Tag{Group: 0x0028, Element: 0x1054}, types.VRLO, "RescaleType"},
	{types.Tag{Group: 0x0028, Element: 0x1055}, types.VRLO, "WindowCenterWidthExplanation"},
	{types.Tag{Group: 0x0028, Element: 0x2110}, types.VRCS, "LossyImageCompression"},
	{types.Tag{Group: 0x0032, Element: 0x1032}, types.VRPN, "RequestingPhysician"},
	{types.Tag{Group: 0x0032, Element: 0x1060}, types.VRLO, "RequestedProcedureDescription"},
	{types.Tag{Group: 0x0040, Element: 0x0244}, types.VRDA, "PerformedProcedureStepStartDate"},
	{types.Tag{Group: 0x0040, Element: 0x0245}, types.VRTM, "PerformedProcedureStepStartTime"},
	{types.Tag{Group: 0x0040, Element: 0x0253}, types.VRSH, "PerformedProcedureStepID"},
	{types.Tag{Group: 0x0040, Element: 0x0254}, types.VRLO, "PerformedProcedureStepDescription"},
	{types.Tag{Group: 0x0040, Element: 0x0275}, types.VRSQ, "RequestAttributesSequence"},
	{types.Tag{Group: 0x0040, Element: 0x1001}, types.VRSH, "RequestedProcedureID"},
	{types.Tag{Group: 0x7FE0, Element: 0x0010}, types.VROW, "PixelData"},
}
